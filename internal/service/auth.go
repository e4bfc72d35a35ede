package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"travel/internal/auth"
	"travel/internal/domain"
	"travel/internal/redis"
	"travel/internal/repository"
)

// MinPasswordLength is the shortest password accepted for a new admin.
const MinPasswordLength = 8

// AuthService signs administrators in and resolves their sessions.
type AuthService struct {
	admins      repository.AdminRepository
	tokens      *auth.TokenService
	revocations redis.RevocationStoreInterface
	log         logrus.FieldLogger
	now         func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	admins repository.AdminRepository,
	tokens *auth.TokenService,
	revocations redis.RevocationStoreInterface,
	log logrus.FieldLogger,
) *AuthService {
	return &AuthService{
		admins:      admins,
		tokens:      tokens,
		revocations: revocations,
		log:         log.WithField("service", "auth"),
		now:         time.Now,
	}
}

// SignInResult is a freshly issued session.
type SignInResult struct {
	Token   string
	Session domain.Session
}

// SignIn checks the credentials and issues a session token.
// Every failure is reported as ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.WithError(err).Error("admin lookup failed during sign-in")
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(admin.Email)
	if err != nil {
		s.log.WithError(err).Error("failed to issue session token")
		return nil, ErrInvalidCredentials
	}

	s.log.WithField("email", admin.Email).Info("admin signed in")
	return &SignInResult{Token: token, Session: sessionFromClaims(claims)}, nil
}

// CurrentUser resolves the session carried by token.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return domain.Session{}, ErrUnauthorized
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.log.WithError(err).Error("revocation check failed")
		return domain.Session{}, ErrUnauthorized
	}
	if revoked {
		return domain.Session{}, ErrUnauthorized
	}

	return sessionFromClaims(claims), nil
}

// SignOut revokes the session until it would have expired.
func (s *AuthService) SignOut(ctx context.Context, session domain.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if err := s.revocations.Revoke(ctx, session.TokenID, ttl); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	s.log.WithField("email", session.Email).Info("admin signed out")
	return nil
}

// CreateAdmin stores an administrator with a bcrypt hash of password.
// An existing admin with the same email gets the new password.
func (s *AuthService) CreateAdmin(ctx context.Context, email, password string) (*domain.Admin, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &domain.Admin{Email: email, PasswordHash: string(hash), CreatedAt: s.now().UTC()}
	if err := s.admins.Save(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func sessionFromClaims(c *auth.Claims) domain.Session {
	return domain.Session{TokenID: c.ID, Email: c.Email, ExpiresAt: c.ExpiresAt.Time}
}
