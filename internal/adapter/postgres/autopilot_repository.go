package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-autopilot/internal/core/domain"
)

const autopilotColumns = `id, list_id, schedule_id, offer_id, owner_agent, owner_user, status, next_update, created_at, updated_at`

// AutopilotRepository implements port.AutopilotRepository using pgxpool.
type AutopilotRepository struct {
	pool *pgxpool.Pool
}

// NewAutopilotRepository returns a new repository instance.
func NewAutopilotRepository(pool *pgxpool.Pool) *AutopilotRepository {
	return &AutopilotRepository{pool: pool}
}

func scanAutopilot(row pgx.CollectableRow) (domain.Autopilot, error) {
	var ap domain.Autopilot
	err := row.Scan(
		&ap.ID,
		&ap.ListID,
		&ap.ScheduleID,
		&ap.OfferID,
		&ap.OwnerAgent,
		&ap.OwnerUser,
		&ap.Status,
		&ap.NextUpdate,
		&ap.CreatedAt,
		&ap.UpdatedAt,
	)
	return ap, err
}

// Create inserts the autopilot. The unique slot index turns a duplicate into
// domain.ErrConflict.
func (r *AutopilotRepository) Create(ctx context.Context, ap *domain.Autopilot) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO autopilots (list_id, schedule_id, offer_id, owner_agent, owner_user, status, next_update)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`,
		ap.ListID, ap.ScheduleID, ap.OfferID, ap.OwnerAgent, ap.OwnerUser, ap.Status, ap.NextUpdate,
	).Scan(&ap.ID, &ap.CreatedAt, &ap.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("autopilot %s: %w", ap.Key(), domain.ErrConflict)
	}
	return err
}

// Get returns nil, nil when the autopilot does not exist.
func (r *AutopilotRepository) Get(ctx context.Context, id int64) (*domain.Autopilot, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+autopilotColumns+` FROM autopilots WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	ap, err := pgx.CollectExactlyOneRow(rows, scanAutopilot)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AutopilotRepository) ListByAgent(ctx context.Context, agent string) ([]domain.Autopilot, error) {
	return r.list(ctx, `SELECT `+autopilotColumns+` FROM autopilots WHERE owner_agent = $1 ORDER BY id`, agent)
}

func (r *AutopilotRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Autopilot, error) {
	return r.list(ctx, `SELECT `+autopilotColumns+` FROM autopilots WHERE id = ANY($1) ORDER BY id`, ids)
}

// ListDue returns active autopilots whose next update is not after before.
func (r *AutopilotRepository) ListDue(ctx context.Context, before time.Time) ([]domain.Autopilot, error) {
	return r.list(ctx, `SELECT `+autopilotColumns+` FROM autopilots
        WHERE status = $1 AND next_update <= $2 ORDER BY next_update, id`, domain.AutopilotActive, before)
}

func (r *AutopilotRepository) list(ctx context.Context, query string, args ...any) ([]domain.Autopilot, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAutopilot)
}

// Update writes the mutable fields. The row is locked first so the update
// does not race a concurrent delete.
func (r *AutopilotRepository) Update(ctx context.Context, ap *domain.Autopilot) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var id int64
	err = tx.QueryRow(ctx, `SELECT id FROM autopilots WHERE id = $1 FOR UPDATE`, ap.ID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("autopilot %d: %w", ap.ID, domain.ErrNotFound)
		return err
	}
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `
        UPDATE autopilots SET list_id = $2, offer_id = $3, status = $4, updated_at = now()
        WHERE id = $1
        RETURNING updated_at`,
		ap.ID, ap.ListID, ap.OfferID, ap.Status,
	).Scan(&ap.UpdatedAt)
	if isUniqueViolation(err) {
		err = fmt.Errorf("autopilot %s: %w", ap.Key(), domain.ErrConflict)
	}
	return err
}

func (r *AutopilotRepository) SetNextUpdate(ctx context.Context, id int64, next time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE autopilots SET next_update = $2, updated_at = now() WHERE id = $1`, id, next)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("autopilot %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the autopilot row and reports whether it existed.
func (r *AutopilotRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM autopilots WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
