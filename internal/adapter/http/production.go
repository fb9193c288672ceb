package httpadapter

import "net/http"

type startProductionRequest struct {
	Agent        string  `json:"agent" validate:"required"`
	AutopilotIDs []int64 `json:"autopilotIds" validate:"required,min=1,dive,gt=0"`
}

// handleStartProduction starts production for a set of the agent's
// autopilots. Per-autopilot failures are part of the 200 report.
func (h *Handler) handleStartProduction(w http.ResponseWriter, r *http.Request) {
	var req startProductionRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, "start production", err, nil)
		return
	}
	report, err := h.production.StartProductionByIDs(r.Context(), req.Agent, req.AutopilotIDs)
	if err != nil {
		h.writeError(w, "start production", err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
