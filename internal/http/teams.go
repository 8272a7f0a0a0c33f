package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleTeamList(w http.ResponseWriter, r *http.Request) {
	labels := h.Config.TeamLabels()

	resp := teamListResponse{Labels: make([]string, 0, len(labels))}
	for _, label := range labels {
		resp.Labels = append(resp.Labels, string(label))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	label := chi.URLParam(r, "label")
	team, err := h.Config.Team(label)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := teamResponse{
		Label:   label,
		Name:    team.Name,
		Ping:    team.Ping,
		Members: team.MemberLogins(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
