package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

type UserHandler struct {
	service interfaces.UserService
	logger  logger.Logger
}

func NewUserHandler(service interfaces.UserService, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type LoginRequest struct {
	Phone string `json:"phone"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Profile *domain.Profile `json:"profile"`
}

// HandleAuth serves /auth/login and /auth/logout.
func (h *UserHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		respondError(w, "Not found", http.StatusNotFound, nil)
		return
	}

	switch parts[1] {
	case "login":
		h.login(w, r)
	case "logout":
		h.logout(w, r)
	default:
		respondError(w, "Not found", http.StatusNotFound, nil)
	}
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		respondError(w, "Validation failed", http.StatusBadRequest, []ValidationError{
			{Field: "phone", Message: "phone is required"},
		})
		return
	}

	result, err := h.service.Login(r.Context(), CustomerID(r.Context()), phone)
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Token:   result.Token,
		Profile: result.Profile,
	})
}

func (h *UserHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), CustomerID(r.Context())); err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleProfile serves /profile and /profile/addresses.
func (h *UserHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.getProfile(w, r)
		case http.MethodPatch:
			h.updateProfile(w, r)
		default:
			respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		}
	case len(parts) == 2 && parts[1] == "addresses":
		if r.Method != http.MethodPost {
			respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
			return
		}
		h.addAddress(w, r)
	default:
		respondError(w, "Not found", http.StatusNotFound, nil)
	}
}

func (h *UserHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context(), CustomerID(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveProfile) {
			respondError(w, "No active profile", http.StatusNotFound, nil)
			return
		}
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), CustomerID(r.Context()), update)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveProfile) {
			respondError(w, "No active profile", http.StatusNotFound, nil)
			return
		}
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) addAddress(w http.ResponseWriter, r *http.Request) {
	var address domain.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateAddress(address); len(validationErrors) > 0 {
		respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	profile, err := h.service.AddAddress(r.Context(), CustomerID(r.Context()), address)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveProfile) {
			respondError(w, "No active profile", http.StatusNotFound, nil)
			return
		}
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusCreated, profile)
}

func validateAddress(a domain.Address) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(a.Title) == "" {
		errors = append(errors, ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if strings.TrimSpace(a.Location) == "" {
		errors = append(errors, ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	return errors
}
