package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"maestro/internal/apperr"
	"maestro/internal/logger"
	"maestro/internal/messaging"
	"maestro/internal/metrics"
	"maestro/internal/models"
	"maestro/internal/token"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	users      UserStore
	tokens     *token.Manager
	natsClient *messaging.NATSClient
	now        func() time.Time
}

func NewAuthService(users UserStore, tokens *token.Manager, natsClient *messaging.NATSClient) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		natsClient: natsClient,
		now:        time.Now,
	}
}

// HashPassword returns the hex SHA-256 digest of a password. Verification
// is a straight equality check against the stored digest; there is no
// per-user salt.
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return fmt.Sprintf("%x", hash)
}

func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("email is already registered")
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: HashPassword(req.Password),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MiddleName:   req.MiddleName,
		PhoneNumber:  req.PhoneNumber,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	event := models.UserRegisteredEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Timestamp: s.now(),
	}
	if err := s.natsClient.Publish(models.SubjectUserRegistered, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish user registered event",
			"error", err,
			"user_id", user.ID)
	}

	return &models.SignupResponse{UserID: user.ID, Email: user.Email}, nil
}

// Login verifies credentials and issues a session token. The failure
// message never reveals whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || HashPassword(req.Password) != user.PasswordHash {
		return nil, apperr.Auth("invalid email or password")
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	metrics.TokensIssued.Inc()

	return &models.LoginResponse{Token: signed}, nil
}
