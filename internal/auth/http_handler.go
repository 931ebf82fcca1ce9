package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /auth/login
// @Summary Admin login
// @Description Validate the admin credential and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginReq true "Login request"
// @Success 200 {object} map[string]string
// @Failure 401 {object} httpx.MessageResponse
// @Router /auth/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpx.JSONMessage(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req LoginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msgs := httpx.ValidateStruct(req); len(msgs) > 0 {
		httpx.JSONMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			httpx.JSONMessage(w, http.StatusInternalServerError, "Server configuration error.")
			return
		}
		httpx.JSONMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"token": token})
}
