package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxFromContext_Nil(t *testing.T) {
	assert.Nil(t, TxFromContext(context.Background()))
}

func TestTxFromContext_WithWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), DBTxKey, "not-a-tx")
	assert.Nil(t, TxFromContext(ctx))
}
