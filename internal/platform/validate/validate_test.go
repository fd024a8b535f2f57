package validate

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

func TestText(t *testing.T) {
	assert.NoError(t, Text("name", "Aspirin", 100))
	assert.True(t, apperr.Is(Text("name", "", 100), apperr.KindValidation))
	assert.True(t, apperr.Is(Text("name", "   ", 100), apperr.KindValidation))
	assert.Error(t, Text("phone", strings.Repeat("1", 21), 20))
	assert.NoError(t, Text("phone", strings.Repeat("é", 20), 20))
}

func TestNonNegative(t *testing.T) {
	assert.NoError(t, NonNegative("total", 0))
	assert.NoError(t, NonNegative("total", 50.5))
	assert.Error(t, NonNegative("total", -0.01))
	assert.Error(t, NonNegative("total", math.NaN()))
	assert.Error(t, NonNegative("total", math.Inf(1)))
}

func TestPositiveID(t *testing.T) {
	assert.NoError(t, PositiveID("order_id", 1))
	assert.EqualError(t, PositiveID("order_id", 0), "order_id must be a positive integer")
}

func TestFirst(t *testing.T) {
	assert.NoError(t, First(nil, nil))
	err := First(nil, Text("email", "", 100), Text("phone", "", 20))
	assert.EqualError(t, err, "email is required")
}
