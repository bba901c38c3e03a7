package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"

	"luxurystay-backend/models"
)

const tokenExpiryMinutes = 60 * 24 * 3

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// AuthResult is what every sign-in path returns: the user row plus a signed
// access token.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"accessToken"`
}

// googleVerifier validates a Google ID token. Swappable for tests.
type googleVerifier func(ctx context.Context, idToken string) (*idtoken.Payload, error)

type AuthService struct {
	users        UserStore
	sessions     SessionCache
	sessionTTL   time.Duration
	verifyGoogle googleVerifier
}

func NewAuthService(users UserStore, sessions SessionCache, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		verifyGoogle: func(ctx context.Context, token string) (*idtoken.Payload, error) {
			return idtoken.Validate(ctx, token, os.Getenv("GOOGLE_CLIENT_ID"))
		},
	}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return AuthResult{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if len(input.Password) < 6 {
		return AuthResult{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	if _, err := s.users.GetByEmail(email); err == nil {
		return AuthResult{}, ErrEmailTaken
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "User"
	}

	user := models.User{
		Email:    email,
		Name:     name,
		Phone:    strings.TrimSpace(input.Phone),
		Password: hashed,
		Role:     models.RoleUser,
	}
	if err := s.users.Insert(&user); err != nil {
		return AuthResult{}, err
	}

	return s.issueSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if user.Password == "" {
		// Google-provisioned account, no password to compare.
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// LoginWithGoogle validates a Google ID token and provisions the account on
// first sign-in.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (AuthResult, error) {
	payload, err := s.verifyGoogle(ctx, idToken)
	if err != nil {
		return AuthResult{}, fmt.Errorf("%w: google token rejected", ErrInvalidCredentials)
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	name, _ := payload.Claims["name"].(string)
	if email == "" || !verified {
		return AuthResult{}, fmt.Errorf("%w: google account email not verified", ErrInvalidCredentials)
	}
	email = strings.ToLower(email)

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if name == "" {
			name = "User"
		}
		user = models.User{
			Email: email,
			Name:  name,
			Role:  models.RoleUser,
		}
		if insertErr := s.users.Insert(&user); insertErr != nil {
			return AuthResult{}, insertErr
		}
	}

	return s.issueSession(ctx, user)
}

// Logout drops the cached session. The JWT itself simply expires.
func (s *AuthService) Logout(ctx context.Context, userID uint) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Delete(ctx, userID); err != nil {
		log.Printf("failed to clear session cache for user %d: %v", userID, err)
	}
}

// CurrentUser serves the cached session when present and falls back to the
// database, refreshing the cache. The database is authoritative: a role
// mismatch in the cached copy is overwritten, never trusted.
func (s *AuthService) CurrentUser(ctx context.Context, info UserInfo) (CachedSession, error) {
	if s.sessions != nil {
		cached, err := s.sessions.Get(ctx, info.UserID)
		if err != nil {
			log.Printf("session cache read failed for user %d: %v", info.UserID, err)
		} else if cached != nil && cached.Role == info.Role {
			return *cached, nil
		}
	}

	user, err := s.users.GetByID(info.UserID)
	if err != nil {
		return CachedSession{}, err
	}

	session := CachedSession{
		UID:   user.ID,
		Email: user.Email,
		Name:  user.Name,
		Phone: user.Phone,
		Role:  user.Role,
	}
	s.cacheSession(ctx, session)
	return session, nil
}

func (s *AuthService) issueSession(ctx context.Context, user models.User) (AuthResult, error) {
	token, err := GenerateToken(UserInfo{UserID: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		return AuthResult{}, err
	}

	s.cacheSession(ctx, CachedSession{
		UID:   user.ID,
		Email: user.Email,
		Name:  user.Name,
		Phone: user.Phone,
		Role:  user.Role,
		Token: token,
	})

	return AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) cacheSession(ctx context.Context, session CachedSession) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Set(ctx, session, s.sessionTTL); err != nil {
		log.Printf("failed to cache session for user %d: %v", session.UID, err)
	}
}
