package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
	"github.com/pharmacy/pharmacy/internal/platform/db"
)

const (
	customerColumns = `id, name, email, phone`
	emailConstraint = "customer_email_key"
)

type customerRepoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &customerRepoPG{pool: pool}
}

func (r *customerRepoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

func (r *customerRepoPG) Create(ctx context.Context, c *Customer) error {
	err := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO customer (name, email, phone) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.Email, c.Phone,
	).Scan(&c.ID)
	return translate(err, "customer", c.Email)
}

func (r *customerRepoPG) GetByID(ctx context.Context, id int64) (*Customer, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+customerColumns+` FROM customer WHERE id = $1`, id)
	if err != nil {
		return nil, db.Translate(err, fmt.Sprintf("customer %d", id))
	}
	c, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Customer])
	if err != nil {
		return nil, db.Translate(err, fmt.Sprintf("customer %d", id))
	}
	return c, nil
}

func (r *customerRepoPG) Update(ctx context.Context, c *Customer) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE customer SET name = $2, email = $3, phone = $4 WHERE id = $1`,
		c.ID, c.Name, c.Email, c.Phone,
	)
	if err != nil {
		return translate(err, fmt.Sprintf("customer %d", c.ID), c.Email)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("customer %d not found", c.ID)
	}
	return nil
}

func (r *customerRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM customer WHERE id = $1`, id)
	if err != nil {
		return db.Translate(err, fmt.Sprintf("customer %d", id))
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("customer %d not found", id)
	}
	return nil
}

func (r *customerRepoPG) List(ctx context.Context) ([]*Customer, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+customerColumns+` FROM customer ORDER BY id`)
	if err != nil {
		return nil, db.Translate(err, "customers")
	}
	customers, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[Customer])
	if err != nil {
		return nil, db.Translate(err, "customers")
	}
	return customers, nil
}

func (r *customerRepoPG) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customer WHERE id = $1)`, id).Scan(&ok)
	return ok, db.Translate(err, fmt.Sprintf("customer %d", id))
}

// translate reports a duplicate email by address instead of constraint name.
func translate(err error, entity, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName == emailConstraint {
		return apperr.Wrap(err, apperr.KindConstraintViolation, "email %q is already registered", email)
	}
	return db.Translate(err, entity)
}
