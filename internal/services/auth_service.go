package services

import (
	"errors"
	"time"

	"productgen/internal/domain"
	"productgen/internal/repos"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds     = errors.New("invalid username or password")
	ErrBadToken     = errors.New("invalid or missing token")
	ErrExpiredToken = errors.New("token has expired")
)

// DefaultTokenTTL applies when no TTL is configured.
const DefaultTokenTTL = time.Hour

// Claims carried by issued tokens. The username is the subject.
type Claims struct {
	jwt.RegisteredClaims
}

// AuthService logs users in against the users table and issues HS256
// tokens that guard the job endpoints.
type AuthService struct {
	Users  *repos.UserRepo
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func NewAuthService(users *repos.UserRepo, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{Users: users, Secret: []byte(secret), TTL: ttl, Now: time.Now}
}

// EnsureUser seeds or updates a login.
func (s *AuthService) EnsureUser(username, password string) error {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.Upsert(domain.User{ID: uuid.NewString(), Username: username, Hash: string(h)})
}

// Login checks the password and returns a signed token.
func (s *AuthService) Login(username, password string) (string, error) {
	u, err := s.Users.ByUsername(username)
	if err != nil {
		return "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", ErrBadCreds
	}
	return s.Issue(u.Username)
}

func (s *AuthService) Issue(username string) (string, error) {
	now := s.Now()
	claims := Claims{jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Verify validates signature and expiry and returns the username. A token
// for a user that no longer exists is rejected.
func (s *AuthService) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrBadToken
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.Now),
		jwt.WithExpirationRequired(),
	)
	var claims Claims
	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.Secret, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return "", ErrExpiredToken
	}
	if err != nil {
		return "", ErrBadToken
	}
	if _, err := s.Users.ByUsername(claims.Subject); err != nil {
		return "", ErrBadToken
	}
	return claims.Subject, nil
}
