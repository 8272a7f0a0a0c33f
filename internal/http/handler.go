package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"rfcbot/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Handler struct {
	Config *service.ConfigService
	Log    *slog.Logger
}

func NewHandler(cfg *service.ConfigService, log *slog.Logger) *Handler {
	return &Handler{
		Config: cfg,
		Log:    log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Поверхность только читающая, поэтому разрешаем GET отовсюду
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", h.handleTeamList)
		r.Get("/{label}", h.handleTeamGet)
	})

	r.Route("/repos", func(r chi.Router) {
		r.Get("/behavior", h.handleRepoBehavior)
		r.Get("/reactions", h.handleRepoReactions)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
