package httpadapter

import (
	"context"
	"net/http"

	"campaign-autopilot/internal/core/domain"
	"campaign-autopilot/internal/core/port"
)

type bulkRequest struct {
	Agent    string  `json:"agent" validate:"required"`
	UserID   int64   `json:"userId" validate:"required"`
	ListID   int64   `json:"listId" validate:"gte=0"`
	EmailIDs []int64 `json:"emailIds" validate:"required,min=1,dive,gt=0"`
}

type emailListResponse struct {
	Emails    []domain.Email   `json:"emails"`
	Selection domain.Selection `json:"selection"`
}

// handleListEmails returns an agent's list emails and their partition.
func (h *Handler) handleListEmails(w http.ResponseWriter, r *http.Request) {
	listID, err := queryInt64(r, "list_id")
	if err != nil {
		h.writeError(w, "list emails", err, nil)
		return
	}
	emails, err := h.emails.ListByOwnerAndList(r.Context(), r.URL.Query().Get("agent"), listID)
	if err != nil {
		h.writeError(w, "list emails", err, nil)
		return
	}
	if emails == nil {
		emails = []domain.Email{}
	}
	h.writeJSON(w, http.StatusOK, emailListResponse{Emails: emails, Selection: h.emails.Selectable(emails)})
}

type bulkFunc func(ctx context.Context, req port.BatchRequest) (*port.BatchResult, error)

// handleBulk serves one bulk transition. Per-email failures are part of the
// 200 result; a failed read-back after the transitions is 502 carrying the
// partial result.
func (h *Handler) handleBulk(run bulkFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bulkRequest
		if err := decode(r, &req); err != nil {
			h.writeError(w, "bulk email", err, nil)
			return
		}
		res, err := run(r.Context(), port.BatchRequest{
			Owner:    domain.Owner{Agent: req.Agent, UserID: req.UserID},
			ListID:   req.ListID,
			EmailIDs: req.EmailIDs,
		})
		if err != nil {
			var partial any
			if res != nil {
				partial = res
			}
			h.writeError(w, "bulk email", err, partial)
			return
		}
		h.writeJSON(w, http.StatusOK, res)
	}
}
