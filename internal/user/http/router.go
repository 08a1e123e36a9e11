package http

import (
	"net/http"
	"time"

	commonhttp "github.com/AlibekovAA/user-registry/internal/common/http"
	"github.com/AlibekovAA/user-registry/internal/common/logger"
	"github.com/AlibekovAA/user-registry/internal/common/validation"
	"github.com/AlibekovAA/user-registry/internal/user/domain"
	"github.com/AlibekovAA/user-registry/internal/user/service"
)

// createUserRequest uses pointers so an absent field is reported as
// missing rather than as a zero value.
type createUserRequest struct {
	Username *string `json:"username" validate:"required,min=3,max=50"`
	Email    *string `json:"email" validate:"required,email"`
	Age      *int    `json:"age" validate:"required,gt=0"`
}

func (r createUserRequest) toDomain() domain.User {
	return domain.User{
		Username: *r.Username,
		Email:    *r.Email,
		Age:      *r.Age,
	}
}

type userListResponse struct {
	Users []domain.User `json:"users"`
}

type Handler struct {
	svc       service.Service
	validator *validation.Validator
	errors    *commonhttp.ErrorHandler
	log       *logger.Logger
}

func NewHandler(users service.Service, validator *validation.Validator, requestTimeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{
		svc:       users,
		validator: validator,
		errors:    commonhttp.NewErrorHandler(log),
		log:       log,
	}

	withTimeout := commonhttp.WithTimeout(requestTimeout)

	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", commonhttp.ServiceStatusHandler())
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.HandleFunc("/users", h.redirectToCollection)
	mux.HandleFunc("/users/{$}", withTimeout(h.collection))
	mux.HandleFunc("/users/{username}", withTimeout(commonhttp.RequireMethod(http.MethodGet)(h.get)))
	mux.HandleFunc("/", commonhttp.NotFound)
	return mux
}

func (h *Handler) redirectToCollection(w http.ResponseWriter, r *http.Request) {
	target := "/users/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

func (h *Handler) collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		commonhttp.MethodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"action": "create_user_invalid_body",
		}).Warnf("create user failed: %v", err)
		h.errors.HandleError(w, r, err)
		return
	}

	if err := h.validator.Struct(req, "body"); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"action": "create_user_validation_failed",
		}).Warnf("create user failed: %v", err)
		h.errors.HandleError(w, r, err)
		return
	}

	user, err := h.svc.Register(r.Context(), req.toDomain())
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	if users == nil {
		users = []domain.User{}
	}
	commonhttp.WriteJSON(w, http.StatusOK, userListResponse{Users: users})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Get(r.Context(), r.PathValue("username"))
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, user)
}
