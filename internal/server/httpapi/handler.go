package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mlevko/storefront/internal/common"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	Email  string `json:"email"`
	DOB    string `json:"dob"`
	Gender string `json:"gender"`
}

type profileUpdateRequest struct {
	DOB    string `json:"dob"`
	Gender string `json:"gender"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	_, err := s.accounts.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		s.logger.Error(r.Context(), "signup failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.logger.Info(r.Context(), "account created", "email", req.Email)
	writeMessage(w, http.StatusCreated, "User created successfully")
}

// parseLoginRequest accepts both encodings the endpoint has historically
// served: form-encoded bodies from the storefront and JSON from tools.
func parseLoginRequest(r *http.Request) (*loginRequest, error) {

	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &loginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	req, err := parseLoginRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	tokens, err := s.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.logger.Info(r.Context(), "login", "username", req.Username)
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: tokens.AccessToken, TokenType: tokens.TokenType})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {

	accountID := accountIDFromContext(r.Context())

	account, err := s.accounts.GetProfile(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error(r.Context(), "get profile failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Email: account.Email, DOB: account.DOB, Gender: account.Gender})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {

	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	accountID := accountIDFromContext(r.Context())

	// dob/gender stay free-form; the storefront UI owns their validation
	_, err := s.accounts.UpdateProfile(r.Context(), accountID, req.DOB, req.Gender)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error(r.Context(), "update profile failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusOK, "Profile updated successfully")
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
