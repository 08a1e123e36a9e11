package service

import (
	"github.com/AlibekovAA/user-registry/internal/observability/metrics"
)

const (
	opRegister = "register"
	opList     = "list"
	opGet      = "get"

	resultOK       = "ok"
	resultInvalid  = "invalid"
	resultConflict = "conflict"
	resultNotFound = "not_found"
	resultError    = "error"
)

func recordOperation(operation, result string) {
	metrics.RegistryOperationsTotal.WithLabelValues(operation, result).Inc()
}

func incrementUsersRegistered() {
	metrics.UsersRegisteredTotal.Inc()
}

func setRegistrySize(n int) {
	metrics.RegistryUsers.Set(float64(n))
}
