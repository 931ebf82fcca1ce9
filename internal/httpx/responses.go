package httpx

import (
	"encoding/json"
	"net/http"
	"os"
)

// devMode widens error responses with a details field. Never enabled in
// production deployments.
var devMode = os.Getenv("APP_ENV") == "development"

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// JSONMessage writes the legacy {message} body used by mutation endpoints.
func JSONMessage(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

// JSONError writes {error} with an optional details string that is only
// populated outside production.
func JSONError(w http.ResponseWriter, statusCode int, message string, cause error) {
	resp := ErrorResponse{Error: message}
	if devMode && cause != nil {
		resp.Details = cause.Error()
	}
	JSON(w, statusCode, resp)
}
