package medicine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestHandler_CreateMedicine(t *testing.T) {
	svc, repo := newTestService()
	h := NewHandler(svc)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/medicines", `{"name":"Aspirin","quantity":2,"price":3.5,"order_id":1}`), rec)

	require.NoError(t, h.CreateMedicine(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Medicine added successfully!")
	assert.Equal(t, StatusAdded, repo.store[1].InventoryStatus)
}

func TestHandler_UpdateInventoryStatus(t *testing.T) {
	svc, repo := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	_, err := svc.CreateMedicine(context.Background(), aspirin(1))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/", `{"inventory_status":"sold"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.UpdateInventoryStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusSold, repo.store[1].InventoryStatus)
}

func TestHandler_UpdateInventoryStatus_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind apperr.Kind
	}{
		{"unknown label", `{"inventory_status":"unknown"}`, apperr.KindInvalidStatus},
		{"empty label", `{"inventory_status":""}`, apperr.KindInvalidStatus},
		{"missing field", `{}`, apperr.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			h := NewHandler(svc)
			e := echo.New()
			_, err := svc.CreateMedicine(context.Background(), aspirin(1))
			require.NoError(t, err)

			c := e.NewContext(jsonRequest(http.MethodPut, "/", tt.body), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues("1")

			err = h.UpdateInventoryStatus(c)
			assert.True(t, apperr.Is(err, tt.kind), "got %v", err)
			assert.Equal(t, StatusAdded, repo.store[1].InventoryStatus)
		})
	}
}

func TestHandler_ListMedicines(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	ctx := context.Background()
	svc.CreateMedicine(ctx, aspirin(1))
	svc.CreateMedicine(ctx, aspirin(2))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/medicines?order_id=2", nil), rec)
	require.NoError(t, h.ListMedicines(c))

	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0]["order_id"])
	assert.Equal(t, "added", items[0]["inventory_status"])
}

func TestHandler_ListMedicines_EmptyIsArray(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/medicines?order_id=9", nil), rec)
	require.NoError(t, h.ListMedicines(c))
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHandler_DeleteMedicine_InvalidID(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("-3")

	err := h.DeleteMedicine(c)
	assert.True(t, apperr.Is(err, apperr.KindValidation), "got %v", err)
}
