package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/insightboard/insightboard-be/internal/auth"
	"github.com/insightboard/insightboard-be/internal/http/respond"
	"github.com/insightboard/insightboard-be/internal/middleware"
	"github.com/insightboard/insightboard-be/internal/models"
	"github.com/insightboard/insightboard-be/internal/models/dto"
	"github.com/insightboard/insightboard-be/internal/storage"
)

// AuthHandler owns the register/login/me endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
	hasher *auth.PasswordHasher
	resp   *respond.Responder
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, hasher *auth.PasswordHasher, resp *respond.Responder) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, hasher: hasher, resp: resp}
}

// Register attaches auth routes to the router. The gate protects /me.
func (h *AuthHandler) Register(r chi.Router, gate func(http.Handler) http.Handler) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
		r.With(gate).Get("/me", h.handleMe)
	})
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.resp.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		h.resp.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.resp.Internal(w, r, err, "Failed to register user")
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: passwordHash,
	}
	created, err := h.store.Create(r.Context(), user)
	if err != nil {
		// The unique index is the race-free arbiter; a pre-insert lookup
		// could not be trusted anyway.
		if errors.Is(err, storage.ErrAlreadyExists) {
			h.resp.Error(w, http.StatusConflict, "Username already taken")
			return
		}
		h.resp.Internal(w, r, err, "Failed to register user")
		return
	}

	token, err := h.tokens.Issue(created.ID)
	if err != nil {
		h.resp.Internal(w, r, err, "Failed to issue token")
		return
	}

	h.resp.JSON(w, http.StatusCreated, "User registered successfully", dto.TokenResponse{Token: token})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.resp.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		h.resp.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	// Unknown username and wrong password answer identically so usernames
	// cannot be enumerated.
	user, err := h.store.FindByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.resp.Error(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.resp.Internal(w, r, err, "Failed to log in")
		return
	}
	if !h.hasher.Verify(req.Password, user.PasswordHash) {
		h.resp.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.resp.Internal(w, r, err, "Failed to issue token")
		return
	}

	h.resp.JSON(w, http.StatusOK, "Login successful", dto.TokenResponse{Token: token})
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.resp.Error(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	user, err := h.store.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.resp.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.resp.Internal(w, r, err, "Failed to fetch profile")
		return
	}

	h.resp.JSON(w, http.StatusOK, "Profile fetched successfully", user)
}
