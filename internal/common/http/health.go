package http

import (
	"net/http"

	"github.com/AlibekovAA/user-registry/internal/common/logger"
)

type StatusResponse struct {
	Message string `json:"message"`
}

// ServiceStatusHandler answers the root path.
func ServiceStatusHandler() http.HandlerFunc {
	return RequireMethod(http.MethodGet)(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, StatusResponse{Message: "Service operational"})
	})
}

func HealthHandler(log *logger.Logger) http.HandlerFunc {
	return RequireMethod(http.MethodGet)(func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("health check request")
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
