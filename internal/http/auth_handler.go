package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nisuz/decorhavenstore/internal/auth"
	"github.com/nisuz/decorhavenstore/internal/domain"
)

type AuthService interface {
	Register(params auth.RegisterParams) (*domain.User, error)
	Login(email, password string) (string, *domain.User, error)
}

type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(a AuthService) *AuthHandler {
	return &AuthHandler{auth: a}
}

type RegisterRequestDTO struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Password        string     `json:"password"`
	ConfirmPassword string     `json:"confirm_password"`
	BillingAddress  AddressDTO `json:"billing_address"`
	DeliveryAddress AddressDTO `json:"delivery_address"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	user, err := h.auth.Register(auth.RegisterParams{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		BillingAddress:  req.BillingAddress.toDomain(),
		DeliveryAddress: req.DeliveryAddress.toDomain(),
	})
	if err != nil {
		handleAuthError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		handleAuthError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, LoginResponseDTO{Token: token, User: *user})
}

func handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
	case errors.Is(err, auth.ErrEmailTaken):
		respondError(w, http.StatusConflict, "email_taken", "email already registered")
	case errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrMissingField),
		errors.Is(err, auth.ErrPasswordMismatch):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "authentication failed")
	}
}
