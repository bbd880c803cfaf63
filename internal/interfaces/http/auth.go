package http

import (
	"log"
	"net/http"
	"strings"

	"fintrack/internal/domain/user"
	"fintrack/internal/shared/auth"
	"fintrack/internal/shared/validate"
)

type AuthHandler struct {
	userRepo user.Repository
	jwt      *auth.JWT
}

func NewAuthHandler(userRepo user.Repository, jwt *auth.JWT) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, jwt: jwt}
}

var registerSchema = validate.Schema{Fields: []validate.Field{
	{Name: "name", Kind: validate.String, Trim: true, MinLen: 3},
	{Name: "email", Kind: validate.String, Required: true, Trim: true},
	{Name: "password", Kind: validate.String, Required: true, MinLen: 6},
}}

var loginSchema = validate.Schema{Fields: []validate.Field{
	{Name: "email", Kind: validate.String, Required: true, Trim: true},
	{Name: "password", Kind: validate.String, Required: true},
}}

type authResponse struct {
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}

// HandleRegister creates a new user and issues an access token.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cleaned, err := registerSchema.Apply(body)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	email, _ := validate.Str(cleaned, "email")
	if !strings.Contains(email, "@") {
		respondError(w, http.StatusBadRequest, "email: must be a valid email address")
		return
	}
	password, _ := validate.Str(cleaned, "password")

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	params := user.CreateParams{Email: email, PasswordHash: hash}
	if name, ok := validate.Str(cleaned, "name"); ok {
		params.Name = &name
	}

	u, err := h.userRepo.Create(r.Context(), params)
	if err != nil {
		if err == user.ErrEmailTaken {
			respondError(w, http.StatusBadRequest, "email already registered")
			return
		}
		log.Printf("Error creating user: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	token, err := h.jwt.Generate(u.ID, u.Email)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", u.ID, err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{User: u, Token: token})
}

// HandleLogin verifies credentials and issues an access token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cleaned, err := loginSchema.Apply(body)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	email, _ := validate.Str(cleaned, "email")
	password, _ := validate.Str(cleaned, "password")

	u, err := h.userRepo.GetByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Error looking up user %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if u == nil || auth.VerifyPassword(u.PasswordHash, password) != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwt.Generate(u.ID, u.Email)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", u.ID, err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, authResponse{User: u, Token: token})
}
