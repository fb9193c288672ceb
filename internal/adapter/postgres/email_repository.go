package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-autopilot/internal/core/domain"
)

const emailColumns = `id, external_email_id, list_id, owner_agent, task_id, title, body, campaign_name, scheduled_at, status, created_at`

// EmailRepository implements port.EmailRepository. Emails are written by
// the production service; this side only reads them and moves their status.
type EmailRepository struct {
	pool *pgxpool.Pool
}

func NewEmailRepository(pool *pgxpool.Pool) *EmailRepository {
	return &EmailRepository{pool: pool}
}

func scanEmail(row pgx.CollectableRow) (domain.Email, error) {
	var e domain.Email
	err := row.Scan(
		&e.ID,
		&e.ExternalEmailID,
		&e.ListID,
		&e.OwnerAgent,
		&e.TaskID,
		&e.Title,
		&e.Body,
		&e.CampaignName,
		&e.ScheduledAt,
		&e.Status,
		&e.CreatedAt,
	)
	return e, err
}

func (r *EmailRepository) ListByOwnerAndList(ctx context.Context, agent string, listID int64) ([]domain.Email, error) {
	return r.list(ctx, `SELECT `+emailColumns+` FROM emails WHERE owner_agent = $1 AND list_id = $2 ORDER BY scheduled_at, id`, agent, listID)
}

func (r *EmailRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Email, error) {
	return r.list(ctx, `SELECT `+emailColumns+` FROM emails WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *EmailRepository) list(ctx context.Context, query string, args ...any) ([]domain.Email, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanEmail)
}

func (r *EmailRepository) SetStatus(ctx context.Context, id int64, status domain.EmailStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE emails SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("email %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *EmailRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM emails WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("email %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByTask removes every email of a task and returns how many went.
func (r *EmailRepository) DeleteByTask(ctx context.Context, taskID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM emails WHERE task_id = $1`, taskID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
