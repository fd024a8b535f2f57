package customer

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
	"github.com/pharmacy/pharmacy/pkg/api"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestHandler_CreateCustomer(t *testing.T) {
	h, e := newTestHandler()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/customers", `{"name":"A","email":"a@x.com","phone":"123"}`), rec)

	require.NoError(t, h.CreateCustomer(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var ack api.Ack
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, int64(1), ack.ID)
	assert.Equal(t, "Customer added successfully!", ack.Message)
}

func TestHandler_CreateCustomer_MissingEmail(t *testing.T) {
	h, e := newTestHandler()

	c := e.NewContext(jsonRequest(http.MethodPost, "/customers", `{"name":"A","phone":"123"}`), httptest.NewRecorder())
	err := h.CreateCustomer(c)
	assert.True(t, apperr.Is(err, apperr.KindValidation), "got %v", err)
}

func TestHandler_ListCustomers(t *testing.T) {
	h, e := newTestHandler()
	require.NoError(t, h.svc.CreateCustomer(context.Background(), &Customer{Name: "A", Email: "a@x.com", Phone: "123"}))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/customers", nil), rec)
	require.NoError(t, h.ListCustomers(c))

	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{
		"id": float64(1), "name": "A", "email": "a@x.com", "phone": "123", "actions": "View Orders",
	}, items[0])
}

func TestHandler_ListCustomers_EmptyIsArray(t *testing.T) {
	h, e := newTestHandler()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/customers", nil), rec)
	require.NoError(t, h.ListCustomers(c))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_UpdateCustomer(t *testing.T) {
	h, e := newTestHandler()
	require.NoError(t, h.svc.CreateCustomer(context.Background(), &Customer{Name: "A", Email: "a@x.com", Phone: "123"}))

	rec := httptest.NewRecorder()
	c := withID(e.NewContext(jsonRequest(http.MethodPut, "/", `{"name":"Alice"}`), rec), "1")

	require.NoError(t, h.UpdateCustomer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got, err := h.svc.GetCustomer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestHandler_UpdateCustomer_NotFound(t *testing.T) {
	h, e := newTestHandler()
	c := withID(e.NewContext(jsonRequest(http.MethodPut, "/", `{"name":"Alice"}`), httptest.NewRecorder()), "99")

	err := h.UpdateCustomer(c)
	assert.True(t, apperr.Is(err, apperr.KindNotFound), "got %v", err)
}

func TestHandler_GetCustomer_InvalidID(t *testing.T) {
	h, e := newTestHandler()
	c := withID(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder()), "abc")

	err := h.GetCustomer(c)
	assert.True(t, apperr.Is(err, apperr.KindValidation), "got %v", err)
}

func TestHandler_DeleteCustomer(t *testing.T) {
	h, e := newTestHandler()
	require.NoError(t, h.svc.CreateCustomer(context.Background(), &Customer{Name: "A", Email: "a@x.com", Phone: "123"}))

	rec := httptest.NewRecorder()
	c := withID(e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec), "1")

	require.NoError(t, h.DeleteCustomer(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
