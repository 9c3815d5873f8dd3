package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	diagram "Camber/internal/calc/diagram"
)

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

const usage = `Beam quick check for a simply supported beam.
/beam <span_m> [kN@m ...] [udl kN/m@a:b] [m kNm@m ...]
Example: /beam 10 10@5 udl 2@2:6 m 5@4`

func main() {
	token := os.Getenv("TOKEN_BOT")
	if token == "" {
		log.Fatal("TOKEN_BOT missing")
	}

	offset := 0
	for {
		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message != nil {
				handleMessage(token, u.Message)
			}
		}
		time.Sleep(1 * time.Second)
	}
}

func handleMessage(token string, msg *Message) {
	text := strings.TrimSpace(msg.Text)
	switch {
	case strings.HasPrefix(text, "/beam"):
		reply, err := quickCheck(strings.Fields(text)[1:])
		if err != nil {
			sendMessage(token, msg.Chat.ID, "Error: "+err.Error())
			return
		}
		sendMessage(token, msg.Chat.ID, reply)
	case strings.HasPrefix(text, "/start"), strings.HasPrefix(text, "/help"):
		sendMessage(token, msg.Chat.ID, usage)
	}
}

// quickCheck parses "/beam" arguments into a load case and formats the
// reactions and extremes. A generic section (IPE 300) stands in for E*I;
// shear, moment, and reactions do not depend on it.
func quickCheck(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("span required")
	}
	span, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", fmt.Errorf("bad span %q", args[0])
	}
	in := diagram.Input{SpanM: span, E_GPa: 200, InertiaCM4: 8356}

	mode := "load"
	for _, arg := range args[1:] {
		switch arg {
		case "udl":
			mode = "udl"
			continue
		case "m":
			mode = "moment"
			continue
		}
		mag, rest, ok := strings.Cut(arg, "@")
		if !ok {
			return "", fmt.Errorf("bad argument %q", arg)
		}
		v, err := strconv.ParseFloat(mag, 64)
		if err != nil {
			return "", fmt.Errorf("bad argument %q", arg)
		}
		switch mode {
		case "udl":
			a, b, ok := strings.Cut(rest, ":")
			if !ok {
				return "", fmt.Errorf("udl needs a:b in %q", arg)
			}
			start, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return "", fmt.Errorf("bad udl start in %q", arg)
			}
			end, err := strconv.ParseFloat(b, 64)
			if err != nil {
				return "", fmt.Errorf("bad udl end in %q", arg)
			}
			in.UDL = &diagram.UDLInput{IntensityKNM: v, StartM: start, EndM: end}
			mode = "load"
		case "moment":
			pos, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return "", fmt.Errorf("bad position in %q", arg)
			}
			in.Moments = append(in.Moments, diagram.MomentInput{MagnitudeKNM: v, PositionM: pos})
		default:
			pos, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return "", fmt.Errorf("bad position in %q", arg)
			}
			in.Loads = append(in.Loads, diagram.PointLoadInput{MagnitudeKN: v, PositionM: pos})
		}
	}

	if err := diagram.CheckLimits(in); err != nil {
		return "", err
	}
	res, err := diagram.Calculate(in)
	if err != nil {
		return "", err
	}

	vmax, vx := 0.0, 0.0
	mmax, mx := 0.0, 0.0
	for i := range res.XM {
		if math.Abs(res.ShearKN[i]) > math.Abs(vmax) {
			vmax, vx = res.ShearKN[i], res.XM[i]
		}
		if math.Abs(res.MomentKNM[i]) > math.Abs(mmax) {
			mmax, mx = res.MomentKNM[i], res.XM[i]
		}
	}
	return fmt.Sprintf("RA = %.2f kN, RB = %.2f kN\nMax shear %.2f kN at %.2f m\nMax moment %.2f kNm at %.2f m",
		res.RAKN, res.RBKN, vmax, vx, mmax, mx), nil
}

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendMessage(token string, chatID int64, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{"chat_id": chatID, "text": text}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}
