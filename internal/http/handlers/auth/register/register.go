package register

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/edakaya/heritage-api/internal/http/response"
	"github.com/edakaya/heritage-api/internal/lib/sl"
	authservice "github.com/edakaya/heritage-api/internal/services/auth"
)

// Request — входные данные для регистрации
type Request struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=100"`
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept  json
// @Produce json
// @Success 200 {object} response.TokenResponse "Токен доступа"
// @Failure 400 {object} response.Response "Ошибка валидации или некорректный запрос"
// @Failure 409 {object} response.Response "Email уже зарегистрирован"
// @Failure 500 {object} response.Response "Внутренняя ошибка сервера"
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.service.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			log.Info("email already registered", slog.String("email", req.Email))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("email already registered"))
			return
		}
		log.Error("registration failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("registered new user", slog.String("email", req.Email))
	render.JSON(w, r, response.BearerToken(token))
}
