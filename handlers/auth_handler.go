package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"social-api/auth"
	"social-api/dto"
	"social-api/models"
	"social-api/monitoring"
	"social-api/repositories"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	Users     repositories.UserRepository
	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewAuthHandler(users repositories.UserRepository, secret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{Users: users, JWTSecret: secret, TokenTTL: tokenTTL}
}

// Register creates an account and returns a fresh token with it.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Location string `json:"location"`
		Bio      string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	requestData.Username = strings.TrimSpace(requestData.Username)
	requestData.Email = strings.TrimSpace(requestData.Email)
	if requestData.Username == "" || requestData.Email == "" || requestData.Password == "" {
		writeError(w, http.StatusBadRequest, "username, email, password required")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(requestData.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	user := models.User{
		Username:     requestData.Username,
		Email:        requestData.Email,
		PasswordHash: string(hashedPassword),
		Location:     requestData.Location,
		Bio:          requestData.Bio,
	}
	if err := h.Users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			writeError(w, http.StatusBadRequest, "username or email already taken")
			return
		}
		logrus.Errorf("failed to create user: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := auth.GenerateToken(user.ID, h.JWTSecret, h.TokenTTL)
	if err != nil {
		logrus.Errorf("failed to sign token: %v", err)
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	monitoring.RegisterSuccess.Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  dto.NewUserView(&user),
	})
}

// Login verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.Users.FindByEmail(requestData.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		monitoring.LoginFailure.WithLabelValues("unknown_email").Inc()
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(requestData.Password)); err != nil {
		monitoring.LoginFailure.WithLabelValues("wrong_password").Inc()
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID, h.JWTSecret, h.TokenTTL)
	if err != nil {
		logrus.Errorf("failed to sign token: %v", err)
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	monitoring.LoginSuccess.Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  dto.NewUserView(user),
	})
}
