package medicine

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
	"github.com/pharmacy/pharmacy/internal/platform/db"
)

const medicineColumns = `id, name, quantity, price, inventory_status, order_id`

type medicineRepoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &medicineRepoPG{pool: pool}
}

func (r *medicineRepoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

func (r *medicineRepoPG) Create(ctx context.Context, m *Medicine) error {
	err := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO medicine (name, quantity, price, inventory_status, order_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		m.Name, m.Quantity, m.Price, string(m.InventoryStatus), m.OrderID,
	).Scan(&m.ID)
	return db.Translate(err, "medicine")
}

func (r *medicineRepoPG) GetByID(ctx context.Context, id int64) (*Medicine, error) {
	m, err := scanMedicine(r.conn(ctx).QueryRow(ctx,
		`SELECT `+medicineColumns+` FROM medicine WHERE id = $1`, id))
	if err != nil {
		return nil, db.Translate(err, fmt.Sprintf("medicine %d", id))
	}
	return m, nil
}

func (r *medicineRepoPG) UpdateStatus(ctx context.Context, id int64, status InventoryStatus) (*Medicine, error) {
	m, err := scanMedicine(r.conn(ctx).QueryRow(ctx,
		`UPDATE medicine SET inventory_status = $2 WHERE id = $1 RETURNING `+medicineColumns,
		id, string(status)))
	if err != nil {
		return nil, db.Translate(err, fmt.Sprintf("medicine %d", id))
	}
	return m, nil
}

func (r *medicineRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM medicine WHERE id = $1`, id)
	if err != nil {
		return db.Translate(err, fmt.Sprintf("medicine %d", id))
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("medicine %d not found", id)
	}
	return nil
}

func (r *medicineRepoPG) List(ctx context.Context, f Filter) ([]*Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicine`
	var args []any
	if f.OrderID != nil {
		query += ` WHERE order_id = $1`
		args = append(args, *f.OrderID)
	}
	query += ` ORDER BY id`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, db.Translate(err, "medicines")
	}
	defer rows.Close()

	var out []*Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, db.Translate(err, "medicines")
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Translate(err, "medicines")
	}
	return out, nil
}

// scanMedicine reads one row and checks the stored status label.
func scanMedicine(row pgx.Row) (*Medicine, error) {
	var (
		m      Medicine
		status string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Quantity, &m.Price, &status, &m.OrderID); err != nil {
		return nil, err
	}
	st, err := ParseInventoryStatus(status)
	if err != nil {
		return nil, fmt.Errorf("medicine %d has unknown stored inventory_status %q", m.ID, status)
	}
	m.InventoryStatus = st
	return &m, nil
}
