package prescription

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type Service struct {
	prescriptions Repository
	logger        zerolog.Logger
}

func NewService(prescriptions Repository, logger zerolog.Logger) *Service {
	return &Service{prescriptions: prescriptions, logger: logger.With().Str("component", "prescription").Logger()}
}

func (s *Service) GetPrescription(ctx context.Context, id int64) (*Prescription, error) {
	return s.prescriptions.GetByID(ctx, id)
}

// UpdatePrescription merges the supplied fields into the stored prescription.
func (s *Service) UpdatePrescription(ctx context.Context, id int64, u Update) (*Prescription, error) {
	p, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsEmpty() {
		return p, nil
	}

	u.Apply(p)
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.prescriptions.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update prescription %d: %w", id, err)
	}
	s.logger.Info().Int64("prescription_id", id).Msg("prescription updated")
	return p, nil
}
