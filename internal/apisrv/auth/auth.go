package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tavolaworks/trattoria-manager/internal/auth/jwt"
	"github.com/tavolaworks/trattoria-manager/internal/auth/pwhash"
	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

const (
	// AuthHeaderKey is the header key carrying the bearer token.
	AuthHeaderKey = "Authorization"
)

// Server implements admin authentication.
type Server struct {
	adminRepository dependency.Admin
	pwhash          *pwhash.PasswordHasher
	JwtAuth         *jwtauth.JWTAuth
	jwtTTL          time.Duration
	c               *Config
	masterHash      string
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwtSecret"`
	MasterPassword           string `mapstructure:"masterPassword"`
	PasswordHasherSaltSize   int    `mapstructure:"passwordHasherSaltSize"`
	PasswordHasherIterations int    `mapstructure:"passwordHasherIterations"`
	JWTTTL                   string `mapstructure:"jwtttl"`
}

// New creates a new auth server.
func New(c *Config, ar dependency.Admin) (*Server, error) {
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}

	if err := ph.Validate(c.MasterPassword, hash); err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, err
	}
	s := &Server{
		adminRepository: ar,
		pwhash:          ph,
		JwtAuth:         jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		c:               c,
		jwtTTL:          ttl,
		masterHash:      hash,
	}

	return s, nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AuthToken string `json:"authToken"`
}

// Login gets an auth token for the provided username and password.
func (s *Server) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	username := strings.ToLower(req.Username)

	pwHash, err := s.adminRepository.PasswordHashByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.pwhash.Validate(req.Password, pwHash); err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.ErrUnauthorized, err)
	}

	token, err := jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{AuthToken: token}, nil
}

type CreateUserRequest struct {
	MasterPassword string `json:"masterPassword"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

// Create creates a new admin user. Requires the master password.
func (s *Server) Create(ctx context.Context, req *CreateUserRequest) (*LoginResponse, error) {
	if err := s.pwhash.Validate(req.MasterPassword, s.masterHash); err != nil {
		return nil, gerr.ErrUnauthorized
	}

	username := strings.ToLower(req.Username)

	pwHash, err := s.pwhash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	token, err := jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		return nil, err
	}

	if err := s.adminRepository.AddAdmin(ctx, username, pwHash); err != nil {
		return nil, err
	}
	return &LoginResponse{AuthToken: token}, nil
}

type DeleteUserRequest struct {
	MasterPassword string `json:"masterPassword"`
	Username       string `json:"username"`
}

// Delete deletes an admin user. Requires the master password.
func (s *Server) Delete(ctx context.Context, req *DeleteUserRequest) error {
	if err := s.pwhash.Validate(req.MasterPassword, s.masterHash); err != nil {
		return gerr.ErrUnauthorized
	}
	return s.adminRepository.DeleteAdmin(ctx, strings.ToLower(req.Username))
}

type ChangePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword changes the password of the user. The current password or
// the master password must be provided.
func (s *Server) ChangePassword(ctx context.Context, req *ChangePasswordRequest) (*LoginResponse, error) {
	username := strings.ToLower(req.Username)

	currentPwdHash, err := s.adminRepository.PasswordHashByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("cannot get a password: %w", err)
	}

	if err := s.pwhash.Validate(req.CurrentPassword, s.masterHash); err != nil {
		if err := s.pwhash.Validate(req.CurrentPassword, currentPwdHash); err != nil {
			return nil, fmt.Errorf("%w: neither master nor current password matched", gerr.ErrUnauthorized)
		}
	}

	pwHashNew, err := s.pwhash.HashPassword(req.NewPassword)
	if err != nil {
		return nil, err
	}

	token, err := jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		return nil, err
	}

	if err := s.adminRepository.ChangePassword(ctx, username, pwHashNew); err != nil {
		return nil, err
	}
	return &LoginResponse{AuthToken: token}, nil
}

// WithAuth middleware checks if the request carries a valid bearer token.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get(AuthHeaderKey), "Bearer ")
		_, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid token %v", err.Error()), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
