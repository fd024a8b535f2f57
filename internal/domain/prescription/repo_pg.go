package prescription

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
	"github.com/pharmacy/pharmacy/internal/platform/db"
)

type prescriptionRepoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &prescriptionRepoPG{pool: pool}
}

func (r *prescriptionRepoPG) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, r.pool)
}

func (r *prescriptionRepoPG) Create(ctx context.Context, p *Prescription) error {
	err := r.conn(ctx).QueryRow(ctx,
		`INSERT INTO prescription (doctor_name, date_prescribed) VALUES ($1, $2) RETURNING id`,
		p.DoctorName, p.DatePrescribed,
	).Scan(&p.ID)
	return db.Translate(err, "prescription")
}

func (r *prescriptionRepoPG) GetByID(ctx context.Context, id int64) (*Prescription, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, doctor_name, date_prescribed FROM prescription WHERE id = $1`, id)
	if err != nil {
		return nil, db.Translate(err, fmt.Sprintf("prescription %d", id))
	}
	p, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Prescription])
	if err != nil {
		return nil, db.Translate(err, fmt.Sprintf("prescription %d", id))
	}
	return p, nil
}

func (r *prescriptionRepoPG) Update(ctx context.Context, p *Prescription) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE prescription SET doctor_name = $2, date_prescribed = $3 WHERE id = $1`,
		p.ID, p.DoctorName, p.DatePrescribed,
	)
	if err != nil {
		return db.Translate(err, fmt.Sprintf("prescription %d", p.ID))
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("prescription %d not found", p.ID)
	}
	return nil
}

func (r *prescriptionRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM prescription WHERE id = $1`, id)
	if err != nil {
		return db.Translate(err, fmt.Sprintf("prescription %d", id))
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("prescription %d not found", id)
	}
	return nil
}
