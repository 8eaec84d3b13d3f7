package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/edakaya/heritage-api/internal/http/middlewarectx"
	"github.com/edakaya/heritage-api/internal/http/response"
)

// Response — сведения о владельце токена
type Response struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP
// @Summary Сведения о текущем пользователе
// @Security BearerAuth
// @Tags auth
// @Produce json
// @Success 200 {object} Response "Идентификатор и роль"
// @Failure 401 {object} response.Response "Нет валидного токена"
// @Router /auth/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, okUID := r.Context().Value(middlewarectx.UserUID).(string)
	role, okRole := r.Context().Value(middlewarectx.Role).(string)
	if !okUID || !okRole || userUID == "" {
		log.Error("missing identity in request context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid or missing credentials"))
		return
	}

	render.JSON(w, r, Response{
		UserID: userUID,
		Role:   role,
	})
}
