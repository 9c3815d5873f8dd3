package report

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_report01(tst *testing.T) {

	chk.PrintTitle("report01. pdf round trip")

	body := `{"project":"Warehouse","author":"VK","beam":{"span_m":10,"e_gpa":200,"inertia_cm4":5000,
		"loads":[{"magnitude_kn":10,"position_m":5}],"udl":{"intensity_kn_m":2,"start_m":2,"end_m":6},
		"moments":[{"magnitude_knm":5,"position_m":4}],"samples":101}}`
	req := httptest.NewRequest(http.MethodPost, "/tools/report/pdf", strings.NewReader(body))
	rec := httptest.NewRecorder()
	(&Handler{}).Generate(rec, req)

	if rec.Code != http.StatusOK {
		tst.Errorf("status = %d, body = %s\n", rec.Code, rec.Body.String())
		return
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		tst.Errorf("content type = %q\n", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		tst.Errorf("response is not a pdf\n")
	}
}

func Test_report02(tst *testing.T) {

	chk.PrintTitle("report02. invalid load case yields no document")

	body := `{"beam":{"span_m":10,"e_gpa":200,"inertia_cm4":5000,"loads":[{"magnitude_kn":10,"position_m":12}]}}`
	req := httptest.NewRequest(http.MethodPost, "/tools/report/pdf", strings.NewReader(body))
	rec := httptest.NewRecorder()
	(&Handler{}).Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		tst.Errorf("status = %d, want 400\n", rec.Code)
		return
	}
	if !strings.Contains(rec.Body.String(), "load 1") {
		tst.Errorf("error does not name the load: %q\n", rec.Body.String())
	}
}
