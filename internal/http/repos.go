package http

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) handleRepoBehavior(w http.ResponseWriter, r *http.Request) {
	const handlerName = "repo_behavior"

	repo := r.URL.Query().Get("repo")
	if err := ValidateRepoQuery(repo); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	behavior, err := h.Config.Behavior(repo)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := behaviorResponse{
		Repo:     repo,
		Close:    behavior.Close,
		Postpone: behavior.Postpone,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleRepoReactions(w http.ResponseWriter, r *http.Request) {
	const handlerName = "repo_reactions"

	repo := r.URL.Query().Get("repo")
	if err := ValidateRepoQuery(repo); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	entity := r.URL.Query().Get("entity")
	prohibited, err := h.Config.ProhibitedReactions(repo, entity)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := reactionsResponse{
		Repo:       repo,
		Entity:     entity,
		Prohibited: prohibited,
	}
	_ = json.NewEncoder(w).Encode(resp)
}
