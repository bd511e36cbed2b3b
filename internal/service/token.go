package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/leonidsliusar/webtronics-social/config"
	"github.com/leonidsliusar/webtronics-social/internal/model"
	"github.com/leonidsliusar/webtronics-social/internal/repository"
)

// ErrInvalidCredential covers every token failure mode: bad signature,
// malformed payload, expiry, missing subject, unknown user.
var ErrInvalidCredential = errors.New("could not validate credentials")

// TokenService mints and verifies the signed credentials. It keeps no state
// beyond the signing secret, so any instance can validate any token.
type TokenService struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
	users      repository.UserRepository
}

func NewTokenService(cfg config.JWTConfig, users repository.UserRepository) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.Secret),
		method:     jwt.GetSigningMethod(cfg.Algorithm),
		accessTTL:  time.Duration(cfg.AccessTTLMin) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshTTLMin) * time.Minute,
		users:      users,
	}
}

// IssueAccess mints a short-lived bearer token for the subject.
func (s *TokenService) IssueAccess(subject string) (string, error) {
	token, _, err := s.sign(subject, s.accessTTL)
	return token, err
}

// IssueRefresh mints the long-lived token and reports its expiry so the
// caller can scope the cookie to it.
func (s *TokenService) IssueRefresh(subject string) (string, time.Time, error) {
	return s.sign(subject, s.refreshTTL)
}

func (s *TokenService) sign(subject string, ttl time.Duration) (string, time.Time, error) {
	expiry := time.Now().Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiry),
	}
	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiry, nil
}

// Decode verifies signature and expiry and returns the subject.
func (s *TokenService) Decode(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidCredential
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidCredential
	}
	return claims.Subject, nil
}

// ResolveIdentity decodes the token and loads the user behind its subject.
func (s *TokenService) ResolveIdentity(ctx context.Context, token string) (*model.User, error) {
	email, err := s.Decode(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}
	return user, nil
}
