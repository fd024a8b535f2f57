package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
	"github.com/pharmacy/pharmacy/internal/platform/db"
)

const orderColumns = `id, customer_id, prescription_id, date, total, status`

type orderRepoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &orderRepoPG{pool: pool}
}

func (r *orderRepoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

func (r *orderRepoPG) Create(ctx context.Context, o *Order) error {
	err := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO pharmacy_order (customer_id, prescription_id, date, total, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		o.CustomerID, o.PrescriptionID, o.Date, o.Total, o.Status,
	).Scan(&o.ID)
	return db.Translate(err, "order")
}

func (r *orderRepoPG) GetByID(ctx context.Context, id int64) (*Order, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+orderColumns+` FROM pharmacy_order WHERE id = $1`, id)
	if err != nil {
		return nil, db.Translate(err, fmt.Sprintf("order %d", id))
	}
	o, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Order])
	if err != nil {
		return nil, db.Translate(err, fmt.Sprintf("order %d", id))
	}
	return o, nil
}

func (r *orderRepoPG) Update(ctx context.Context, o *Order) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE pharmacy_order SET date = $2, total = $3, status = $4 WHERE id = $1`,
		o.ID, o.Date, o.Total, o.Status,
	)
	if err != nil {
		return db.Translate(err, fmt.Sprintf("order %d", o.ID))
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("order %d not found", o.ID)
	}
	return nil
}

func (r *orderRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM pharmacy_order WHERE id = $1`, id)
	if err != nil {
		return db.Translate(err, fmt.Sprintf("order %d", id))
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("order %d not found", id)
	}
	return nil
}

func (r *orderRepoPG) List(ctx context.Context, f Filter) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM pharmacy_order`
	var args []any
	if f.CustomerID != nil {
		query += ` WHERE customer_id = $1`
		args = append(args, *f.CustomerID)
	}
	query += ` ORDER BY id`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, db.Translate(err, "orders")
	}
	orders, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[Order])
	if err != nil {
		return nil, db.Translate(err, "orders")
	}
	return orders, nil
}

func (r *orderRepoPG) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pharmacy_order WHERE id = $1)`, id).Scan(&ok)
	return ok, db.Translate(err, fmt.Sprintf("order %d", id))
}

func (r *orderRepoPG) HasMedicines(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM medicine WHERE order_id = $1)`, id).Scan(&ok)
	return ok, db.Translate(err, fmt.Sprintf("order %d", id))
}
