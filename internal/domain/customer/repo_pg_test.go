package customer

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
	"github.com/pharmacy/pharmacy/internal/platform/db"
)

// failingTx stands in for a transaction whose every statement fails with err.
type failingTx struct {
	pgx.Tx
	err error
}

func (f failingTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, f.err }
func (f failingTx) QueryRow(context.Context, string, ...any) pgx.Row { return errRow{f.err} }

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func failingCtx() context.Context {
	return context.WithValue(context.Background(), db.DBTxKey, failingTx{err: &pgconn.PgError{Code: "22003"}})
}

func TestRepoPG_ClassifiesQueryErrors(t *testing.T) {
	repo := NewRepoPG(nil)
	ctx := failingCtx()

	_, err := repo.GetByID(ctx, 1)
	assert.True(t, apperr.Is(err, apperr.KindValidation), "GetByID: %v", err)
	_, err = repo.List(ctx)
	assert.True(t, apperr.Is(err, apperr.KindValidation), "List: %v", err)
	_, err = repo.Exists(ctx, 1)
	assert.True(t, apperr.Is(err, apperr.KindValidation), "Exists: %v", err)
}
