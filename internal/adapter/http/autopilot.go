package httpadapter

import (
	"fmt"
	"net/http"

	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
)

type createAutopilotRequest struct {
	ListID     int64  `json:"listId" validate:"required,gt=0"`
	ScheduleID string `json:"scheduleId" validate:"required,oneof=once-daily twice-daily"`
	OfferID    string `json:"offerId"`
	Agent      string `json:"agent" validate:"required"`
	UserID     int64  `json:"userId" validate:"gte=0"`
}

func (c createAutopilotRequest) toPort() port.CreateAutopilotReq {
	return port.CreateAutopilotReq{
		ListID:     c.ListID,
		ScheduleID: domain.ScheduleID(c.ScheduleID),
		OfferID:    c.OfferID,
		OwnerAgent: c.Agent,
		OwnerUser:  c.UserID,
	}
}

type updateAutopilotRequest struct {
	ListID  int64  `json:"listId" validate:"required,gt=0"`
	OfferID string `json:"offerId"`
	Active  *bool  `json:"active" validate:"required"`
}

// handleCreateAutopilot registers an autopilot. A taken slot is 409.
func (h *Handler) handleCreateAutopilot(w http.ResponseWriter, r *http.Request) {
	var req createAutopilotRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, "create autopilot", err, nil)
		return
	}
	ap, err := h.registry.Create(r.Context(), req.toPort())
	if err != nil {
		h.writeError(w, "create autopilot", err, nil)
		return
	}
	h.writeJSON(w, http.StatusCreated, ap)
}

// handleRegisterAndProduce registers an autopilot and starts its first
// production cycle in the same request.
func (h *Handler) handleRegisterAndProduce(w http.ResponseWriter, r *http.Request) {
	var req createAutopilotRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, "register and produce", err, nil)
		return
	}
	res, err := h.production.RegisterAndProduce(r.Context(), req.toPort())
	if err != nil {
		h.writeError(w, "register and produce", err, nil)
		return
	}
	h.writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) handleListAutopilots(w http.ResponseWriter, r *http.Request) {
	aps, err := h.registry.ListByAgent(r.Context(), r.URL.Query().Get("agent"))
	if err != nil {
		h.writeError(w, "list autopilots", err, nil)
		return
	}
	if aps == nil {
		aps = []domain.Autopilot{}
	}
	h.writeJSON(w, http.StatusOK, aps)
}

// owned loads the autopilot named in the path for the agent in the query.
// An autopilot of another agent is reported as not found.
func (h *Handler) owned(r *http.Request) (*domain.Autopilot, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	agent := r.URL.Query().Get("agent")
	if agent == "" {
		return nil, errInvalid("agent is required")
	}
	ap, err := h.registry.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if ap.OwnerAgent != agent {
		return nil, fmt.Errorf("autopilot %d: %w", id, domain.ErrNotFound)
	}
	return ap, nil
}

// handleGetAutopilot: GET /autopilots/{id}?agent=a
func (h *Handler) handleGetAutopilot(w http.ResponseWriter, r *http.Request) {
	ap, err := h.owned(r)
	if err != nil {
		h.writeError(w, "get autopilot", err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, ap)
}

func (h *Handler) handleUpdateAutopilot(w http.ResponseWriter, r *http.Request) {
	var req updateAutopilotRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, "update autopilot", err, nil)
		return
	}
	ap, err := h.owned(r)
	if err != nil {
		h.writeError(w, "update autopilot", err, nil)
		return
	}
	ap, err = h.registry.Update(r.Context(), port.UpdateAutopilotReq{
		ID:      ap.ID,
		ListID:  req.ListID,
		OfferID: req.OfferID,
		Active:  *req.Active,
	})
	if err != nil {
		h.writeError(w, "update autopilot", err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, ap)
}

func (h *Handler) handleDeleteAutopilot(w http.ResponseWriter, r *http.Request) {
	ap, err := h.owned(r)
	if err != nil {
		h.writeError(w, "delete autopilot", err, nil)
		return
	}
	if err = h.registry.Delete(r.Context(), ap.ID); err != nil {
		h.writeError(w, "delete autopilot", err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleConflicts reports per list whether the schedule is still free for
// the agent: GET /autopilots/conflicts?agent=a&schedule_id=once-daily&list_id=1&list_id=2
func (h *Handler) handleConflicts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	agent := q.Get("agent")
	schedule := domain.ScheduleID(q.Get("schedule_id"))
	lists, err := queryInt64s(r, "list_id")
	if err == nil && (agent == "" || !schedule.Valid() || len(lists) == 0) {
		err = errInvalid("agent, schedule_id and list_id are required")
	}
	if err != nil {
		h.writeError(w, "check conflicts", err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, h.registry.ValidateSelections(r.Context(), agent, schedule, lists))
}
