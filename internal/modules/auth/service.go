package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"nexyatra/internal/domain"
	jwtsvc "nexyatra/internal/pkg/jwt"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Service struct {
	users userRepo
	jwt   *jwtsvc.Service
}

func NewService(users userRepo, jwt *jwtsvc.Service) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login verifies the admin password and issues a JWT. A missing user and a
// wrong password return the same error so the endpoint does not leak which
// emails exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, Email: user.Email, Name: user.Name}, nil
}
