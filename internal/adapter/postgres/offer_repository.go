package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
)

// OfferRepository implements port.OfferRepository.
type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

// GetByExternalID returns nil, nil for an unknown offer.
func (r *OfferRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Offer, error) {
	var o domain.Offer
	err := r.pool.QueryRow(ctx, `SELECT external_id, name, goal FROM offers WHERE external_id = $1`, externalID).
		Scan(&o.ExternalID, &o.Name, &o.Goal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

var (
	_ port.AutopilotRepository = (*AutopilotRepository)(nil)
	_ port.TaskRepository      = (*TaskRepository)(nil)
	_ port.EmailRepository     = (*EmailRepository)(nil)
	_ port.OfferRepository     = (*OfferRepository)(nil)
)
