package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"pricepeek/internal/domain"
	"pricepeek/internal/repos"
)

type AuthService struct {
	Users *repos.UserRepo
}

// Signup hashes the password and inserts the user. The stored credential
// is always a bcrypt hash; duplicate email/username surfaces as
// domain.ErrConflict.
func (s *AuthService) Signup(username, email, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Users.Insert(username, email, string(hash))
}

// Login verifies credentials. Unknown email is domain.ErrNotFound,
// a mismatched password domain.ErrUnauthorized; these map to distinct
// response codes upstream.
func (s *AuthService) Login(email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

// IsAuthFailure reports whether err is one of the expected login
// rejections rather than a store failure.
func IsAuthFailure(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnauthorized)
}
