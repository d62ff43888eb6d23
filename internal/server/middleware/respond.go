package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/notesync/pkg/api"
)

// writeError пишет ошибку в формате GitHub API: {"message": "..."}
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: message})
}
