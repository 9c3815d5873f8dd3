package diagram

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := CheckLimits(input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		var rangeErr *RangeError
		var domainErr *DomainError
		if errors.As(err, &rangeErr) || errors.As(err, &domainErr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// CheckLimits enforces the form caps before the engine runs. These belong to
// the input surface, not to the validator.
func CheckLimits(in Input) error {
	if len(in.Loads) > MaxPointLoads {
		return fmt.Errorf("at most %d point loads", MaxPointLoads)
	}
	if len(in.Moments) > MaxMoments {
		return fmt.Errorf("at most %d applied moments", MaxMoments)
	}
	return nil
}
