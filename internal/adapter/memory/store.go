// Package memory is an in-process record store. It backs local runs
// without PostgreSQL and the use case tests. All repositories of one Store
// share its lock and id sequence.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
)

type Store struct {
	mu         sync.Mutex
	seq        int64
	autopilots map[int64]domain.Autopilot
	tasks      map[int64]domain.AutopilotTask
	emails     map[int64]domain.Email
	offers     map[string]domain.Offer

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		autopilots: make(map[int64]domain.Autopilot),
		tasks:      make(map[int64]domain.AutopilotTask),
		emails:     make(map[int64]domain.Email),
		offers:     make(map[string]domain.Offer),
		now:        time.Now,
	}
}

func (s *Store) Autopilots() *AutopilotRepository { return &AutopilotRepository{s: s} }
func (s *Store) Tasks() *TaskRepository           { return &TaskRepository{s: s} }
func (s *Store) Emails() *EmailRepository         { return &EmailRepository{s: s} }
func (s *Store) Offers() *OfferRepository         { return &OfferRepository{s: s} }

// PutOffer stores or replaces an offer record.
func (s *Store) PutOffer(o domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[o.ExternalID] = o
}

// PutEmail stores an email the way the production service would and
// returns it with its id assigned.
func (s *Store) PutEmail(e domain.Email) domain.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	e.ID = s.seq
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now().UTC()
	}
	s.emails[e.ID] = e
	return e
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func sortByID[T any](items []T, id func(T) int64) []T {
	slices.SortFunc(items, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return items
}

// AutopilotRepository implements port.AutopilotRepository.
type AutopilotRepository struct{ s *Store }

func (r *AutopilotRepository) Create(_ context.Context, ap *domain.Autopilot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.autopilots {
		if other.Key() == ap.Key() {
			return fmt.Errorf("autopilot %s: %w", ap.Key(), domain.ErrConflict)
		}
	}
	now := r.s.now().UTC()
	ap.ID = r.s.nextID()
	ap.CreatedAt, ap.UpdatedAt = now, now
	r.s.autopilots[ap.ID] = *ap
	return nil
}

func (r *AutopilotRepository) Get(_ context.Context, id int64) (*domain.Autopilot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ap, ok := r.s.autopilots[id]
	if !ok {
		return nil, nil
	}
	return &ap, nil
}

func (r *AutopilotRepository) ListByAgent(_ context.Context, agent string) ([]domain.Autopilot, error) {
	return r.filter(func(ap domain.Autopilot) bool { return ap.OwnerAgent == agent }), nil
}

func (r *AutopilotRepository) ListByIDs(_ context.Context, ids []int64) ([]domain.Autopilot, error) {
	return r.filter(func(ap domain.Autopilot) bool { return slices.Contains(ids, ap.ID) }), nil
}

func (r *AutopilotRepository) ListDue(_ context.Context, before time.Time) ([]domain.Autopilot, error) {
	return r.filter(func(ap domain.Autopilot) bool {
		return ap.Active() && !ap.NextUpdate.After(before)
	}), nil
}

func (r *AutopilotRepository) filter(keep func(domain.Autopilot) bool) []domain.Autopilot {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Autopilot{}
	for _, ap := range r.s.autopilots {
		if keep(ap) {
			out = append(out, ap)
		}
	}
	return sortByID(out, func(ap domain.Autopilot) int64 { return ap.ID })
}

func (r *AutopilotRepository) Update(_ context.Context, ap *domain.Autopilot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.autopilots[ap.ID]
	if !ok {
		return fmt.Errorf("autopilot %d: %w", ap.ID, domain.ErrNotFound)
	}
	for id, other := range r.s.autopilots {
		if id != ap.ID && other.Key() == ap.Key() {
			return fmt.Errorf("autopilot %s: %w", ap.Key(), domain.ErrConflict)
		}
	}
	cur.ListID = ap.ListID
	cur.OfferID = ap.OfferID
	cur.Status = ap.Status
	cur.UpdatedAt = r.s.now().UTC()
	r.s.autopilots[ap.ID] = cur
	*ap = cur
	return nil
}

func (r *AutopilotRepository) SetNextUpdate(_ context.Context, id int64, next time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ap, ok := r.s.autopilots[id]
	if !ok {
		return fmt.Errorf("autopilot %d: %w", id, domain.ErrNotFound)
	}
	ap.NextUpdate = next
	r.s.autopilots[id] = ap
	return nil
}

func (r *AutopilotRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.autopilots[id]
	delete(r.s.autopilots, id)
	return ok, nil
}

// TaskRepository implements port.TaskRepository.
type TaskRepository struct{ s *Store }

func (r *TaskRepository) Create(_ context.Context, task *domain.AutopilotTask) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	task.ID = r.s.nextID()
	task.CreatedAt = r.s.now().UTC()
	r.s.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepository) ListByAutopilot(_ context.Context, autopilotID int64) ([]domain.AutopilotTask, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.AutopilotTask{}
	for _, t := range r.s.tasks {
		if t.AutopilotID == autopilotID {
			out = append(out, t)
		}
	}
	return sortByID(out, func(t domain.AutopilotTask) int64 { return t.ID }), nil
}

func (r *TaskRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.tasks, id)
	return nil
}

// EmailRepository implements port.EmailRepository.
type EmailRepository struct{ s *Store }

func (r *EmailRepository) ListByOwnerAndList(_ context.Context, agent string, listID int64) ([]domain.Email, error) {
	return r.filter(func(e domain.Email) bool { return e.OwnerAgent == agent && e.ListID == listID }), nil
}

func (r *EmailRepository) ListByIDs(_ context.Context, ids []int64) ([]domain.Email, error) {
	return r.filter(func(e domain.Email) bool { return slices.Contains(ids, e.ID) }), nil
}

// ListByTask is not part of port.EmailRepository; tests use it to look for
// orphans.
func (r *EmailRepository) ListByTask(taskID int64) []domain.Email {
	return r.filter(func(e domain.Email) bool { return e.TaskID == taskID })
}

func (r *EmailRepository) filter(keep func(domain.Email) bool) []domain.Email {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Email{}
	for _, e := range r.s.emails {
		if keep(e) {
			out = append(out, e)
		}
	}
	return sortByID(out, func(e domain.Email) int64 { return e.ID })
}

func (r *EmailRepository) SetStatus(_ context.Context, id int64, status domain.EmailStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.emails[id]
	if !ok {
		return fmt.Errorf("email %d: %w", id, domain.ErrNotFound)
	}
	e.Status = status
	r.s.emails[id] = e
	return nil
}

func (r *EmailRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.emails[id]; !ok {
		return fmt.Errorf("email %d: %w", id, domain.ErrNotFound)
	}
	delete(r.s.emails, id)
	return nil
}

func (r *EmailRepository) DeleteByTask(_ context.Context, taskID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, e := range r.s.emails {
		if e.TaskID == taskID {
			delete(r.s.emails, id)
			n++
		}
	}
	return n, nil
}

// OfferRepository implements port.OfferRepository.
type OfferRepository struct{ s *Store }

func (r *OfferRepository) GetByExternalID(_ context.Context, externalID string) (*domain.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.offers[externalID]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

var (
	_ port.AutopilotRepository = (*AutopilotRepository)(nil)
	_ port.TaskRepository      = (*TaskRepository)(nil)
	_ port.EmailRepository     = (*EmailRepository)(nil)
	_ port.OfferRepository     = (*OfferRepository)(nil)
)
