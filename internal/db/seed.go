package db

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the part of *pgxpool.Pool the seed needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Seed inserts one demo offer per configured mapping and, for the first
// mapped offer, a demo autopilot with a task and two emails. It is safe to
// run repeatedly: the task and emails are only written together with a new
// demo autopilot.
func Seed(ctx context.Context, db Querier, mappings map[string]int64) error {
	externals := make([]string, 0, len(mappings))
	for ext := range mappings {
		externals = append(externals, ext)
	}
	slices.Sort(externals)

	for i, ext := range externals {
		_, err := db.Exec(ctx, `INSERT INTO offers (external_id, name, goal)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			ext, fmt.Sprintf("Demo offer %d", i+1), "Drive sign-ups for the spring launch")
		if err != nil {
			return err
		}
	}
	if len(externals) == 0 {
		return nil
	}

	var autopilotID int64
	err := db.QueryRow(ctx, `INSERT INTO autopilots
    (list_id, schedule_id, offer_id, owner_agent, owner_user, status, next_update)
VALUES (1, 'once-daily', $1, 'demo-agent', 1, 'active', $2)
ON CONFLICT (list_id, schedule_id, owner_agent) DO NOTHING
RETURNING id`, mappings[externals[0]], time.Now().UTC()).Scan(&autopilotID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	var taskID int64
	err = db.QueryRow(ctx, `INSERT INTO autopilot_tasks (autopilot_id, owner_user)
VALUES ($1, 1) RETURNING id`, autopilotID).Scan(&taskID)
	if err != nil {
		return err
	}
	for j, status := range []int{0, 1} {
		_, err = db.Exec(ctx, `INSERT INTO emails
(external_email_id, list_id, owner_agent, task_id, title, body, campaign_name, scheduled_at, status)
VALUES ($1, 1, 'demo-agent', $2, $3, 'Hello!', 'Demo campaign', $4, $5)`,
			fmt.Sprintf("demo-%d-%d", taskID, j), taskID, fmt.Sprintf("Demo email %d", j+1),
			time.Now().UTC().Add(time.Duration(j+1)*24*time.Hour), status)
		if err != nil {
			return err
		}
	}
	return nil
}
