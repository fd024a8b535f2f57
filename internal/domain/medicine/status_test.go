package medicine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

func TestParseInventoryStatus(t *testing.T) {
	for _, st := range AllInventoryStatuses() {
		got, err := ParseInventoryStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
}

func TestParseInventoryStatus_Rejects(t *testing.T) {
	for _, raw := range []string{"", "unknown", "Sold", " sold", "in_stock", "instock", "ADDED"} {
		_, err := ParseInventoryStatus(raw)
		assert.True(t, apperr.Is(err, apperr.KindInvalidStatus), "%q: got %v", raw, err)
	}
}

func TestAllInventoryStatuses_ReturnsCopy(t *testing.T) {
	all := AllInventoryStatuses()
	require.Len(t, all, 5)
	all[0] = "mutated"
	assert.Equal(t, StatusAdded, AllInventoryStatuses()[0])
}
