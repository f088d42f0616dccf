package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"booking-api/domain"
	"booking-api/dto"
	"booking-api/repositories"
	"booking-api/utils"
)

var (
	ErrEmailTaken    = errors.New("email already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("password not ok")
)

// LoginResult es lo que devuelve un login exitoso
// El token se manda en la cookie, el usuario en el body
type LoginResult struct {
	Token string
	User  *domain.User
}

// UserService define la interfaz del servicio de usuarios y sesiones
type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*LoginResult, error)
	GetProfile(ctx context.Context, token string) (*domain.User, error)
}

type userService struct {
	repo   repositories.UserRepository
	hasher *utils.PasswordHasher
	tokens *utils.TokenManager
}

// NewUserService crea una nueva instancia del servicio
func NewUserService(repo repositories.UserRepository, hasher *utils.PasswordHasher, tokens *utils.TokenManager) UserService {
	return &userService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register crea un nuevo usuario con la contraseña hasheada
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	// 1. Verificar si el email ya existe
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	// 2. Hashear la contraseña
	hashed, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}

	// 3. Guardar; el índice único cubre el caso de dos registros simultáneos
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	slog.Info("User registered", "user_id", user.ID)
	return user, nil
}

// Login verifica las credenciales y genera el token de sesión
// Usuario inexistente y contraseña incorrecta son errores distintos
func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	if !s.hasher.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrWrongPassword
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

// GetProfile devuelve el usuario dueño del token
func (s *userService) GetProfile(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
