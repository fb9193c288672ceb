package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-autopilot/internal/core/domain"
)

// TaskRepository implements port.TaskRepository.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.AutopilotTask) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO autopilot_tasks (autopilot_id, owner_user, status)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`,
		task.AutopilotID, task.OwnerUser, task.Status,
	).Scan(&task.ID, &task.CreatedAt)
}

func (r *TaskRepository) ListByAutopilot(ctx context.Context, autopilotID int64) ([]domain.AutopilotTask, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, autopilot_id, owner_user, status, created_at
        FROM autopilot_tasks WHERE autopilot_id = $1 ORDER BY id`, autopilotID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AutopilotTask, error) {
		var t domain.AutopilotTask
		err := row.Scan(&t.ID, &t.AutopilotID, &t.OwnerUser, &t.Status, &t.CreatedAt)
		return t, err
	})
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM autopilot_tasks WHERE id = $1`, id)
	return err
}
