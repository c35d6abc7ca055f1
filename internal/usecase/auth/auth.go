package authUseCase

import (
	"context"
	"errors"
	"strings"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	userRepo "github.com/cristiannav/swapstyle-backend/internal/repository/user"
	"github.com/cristiannav/swapstyle-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthUseCase interface {
	SignupUser(ctx context.Context, request entity.CreateUserRequest) (*entity.User, error)
	SignIn(ctx context.Context, email, username, password string) (string, error)
	UserFromToken(ctx context.Context, token string) (*entity.User, error)
}

type authUseCase struct {
	userRepo userRepo.IUserRepo
}

func New(userRepo userRepo.IUserRepo) IAuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
	}
}

func (p *authUseCase) SignupUser(ctx context.Context, authData entity.CreateUserRequest) (*entity.User, error) {
	// the email acts as a per-user salt suffix on top of bcrypt's own
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(authData.Password+authData.Email), 12)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := entity.User{
		Name:     authData.Name,
		Email:    authData.Email,
		Username: authData.Username,
		Password: string(hashedPassword),
	}

	created, err := p.userRepo.CreateUser(ctx, &user)
	if err != nil {
		return nil, apperror.FromStore(err, "User not found", "Email or username already taken")
	}
	return created, nil
}

func (p *authUseCase) SignIn(ctx context.Context, email, username, password string) (string, error) {
	user, err := p.userRepo.GetUserByUnameOrEmail(ctx, email, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.Unauthorized("Invalid credentials")
		}
		return "", apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password+user.Email)); err != nil {
		return "", apperror.Unauthorized("Invalid credentials")
	}

	token, err := jwt.CreateToken(int(user.ID), user.Username)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return token, nil
}

// UserFromToken resolves a bearer token (with or without the "Bearer "
// prefix) to its user. Used by the auth middleware.
func (p *authUseCase) UserFromToken(ctx context.Context, token string) (*entity.User, error) {
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		return nil, apperror.Unauthorized("Missing token")
	}

	claims, err := jwt.ValidateToken(token)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid token")
	}

	user, err := p.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid token")
	}
	return user, nil
}
