package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		c := newContext(http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(tt.raw)

		got, err := PathID(c)
		if (err != nil) != tt.wantErr {
			t.Errorf("PathID(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if err != nil && !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("PathID(%q): expected Validation kind, got %s", tt.raw, apperr.KindOf(err))
		}
		if got != tt.want {
			t.Errorf("PathID(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestQueryID(t *testing.T) {
	c := newContext(http.MethodGet, "/medicines", "")
	id, err := QueryID(c, "order_id")
	if err != nil || id != nil {
		t.Fatalf("expected nil filter, got %v, %v", id, err)
	}

	c = newContext(http.MethodGet, "/medicines?order_id=7", "")
	id, err = QueryID(c, "order_id")
	if err != nil || id == nil || *id != 7 {
		t.Fatalf("expected 7, got %v, %v", id, err)
	}

	c = newContext(http.MethodGet, "/medicines?order_id=x", "")
	if _, err := QueryID(c, "order_id"); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected Validation error, got %v", err)
	}
}

func TestBind_MalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, "/customers", `{"name":`)
	var dst struct {
		Name string `json:"name"`
	}
	err := Bind(c, &dst)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected Validation error, got %v", err)
	}
}

func TestBind_OK(t *testing.T) {
	c := newContext(http.MethodPost, "/customers", `{"name":"A"}`)
	var dst struct {
		Name string `json:"name"`
	}
	if err := Bind(c, &dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst.Name != "A" {
		t.Errorf("expected name A, got %q", dst.Name)
	}
}

func TestCreated(t *testing.T) {
	ack := Created("Customer", 3)
	if ack.Message != "Customer added successfully!" || ack.ID != 3 {
		t.Errorf("unexpected ack: %+v", ack)
	}
}
