package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/creditodds/creditodds-api/internal/domain"
)

// writeError writes the same {"error","kind"} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, kind domain.ErrorKind, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
		"kind":  kind.String(),
	})
}
