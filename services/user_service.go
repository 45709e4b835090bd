package services

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/it22117250/ITPM-Project/models"
	"github.com/it22117250/ITPM-Project/repository"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type UserService struct {
	store     repository.Store
	jwtSecret []byte
}

func NewUserService(store repository.Store, jwtSecret []byte) *UserService {
	return &UserService{store: store, jwtSecret: jwtSecret}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*models.User, *ServiceError) {
	role := req.Role
	if role == "" {
		role = "staff"
	}
	if role != "admin" && role != "staff" {
		return nil, newServiceError(http.StatusBadRequest, "Role must be admin or staff")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[UserService] Failed to hash password: %v", err)
		return nil, newServiceError(http.StatusInternalServerError, "Failed to create user")
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashed),
		Name:     req.Name,
		Role:     role,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		if svcErr := storeError(err, "User not found"); svcErr.StatusCode == http.StatusConflict {
			return nil, newServiceError(http.StatusConflict, "Email already exists")
		}
		log.Printf("[UserService] Failed to create user: %v", err)
		return nil, newServiceError(http.StatusInternalServerError, "Failed to create user")
	}

	log.Printf("[UserService] User registered email=%s role=%s", user.Email, user.Role)
	return user, nil
}

// Login verifies credentials and issues a signed token.
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, *ServiceError) {
	user, err := s.store.Users().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, storeError(err, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, newServiceError(http.StatusUnauthorized, "Invalid password")
	}

	token, err := GenerateJWT(s.jwtSecret, user.ID.String(), user.Email, user.Role)
	if err != nil {
		log.Printf("[UserService] Failed to generate token: %v", err)
		return nil, newServiceError(http.StatusInternalServerError, "Failed to generate token")
	}

	return &LoginResponse{User: user, Token: token}, nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, *ServiceError) {
	users, err := s.store.Users().FindAll(ctx)
	if err != nil {
		log.Printf("[UserService] Failed to fetch users: %v", err)
		return nil, newServiceError(http.StatusInternalServerError, "Failed to fetch users")
	}
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, *ServiceError) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "User not found")
	}
	return user, nil
}

// UpdateUser applies a partial field update. An incoming password is
// re-hashed before it touches the store.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.User, *ServiceError) {
	delete(updates, "id")
	if pw, ok := updates["password"]; ok {
		plain, ok := pw.(string)
		if !ok || plain == "" {
			return nil, newServiceError(http.StatusBadRequest, "Invalid password value")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return nil, newServiceError(http.StatusInternalServerError, "Failed to update user")
		}
		updates["password"] = string(hashed)
	}
	if len(updates) == 0 {
		return nil, newServiceError(http.StatusBadRequest, "No updatable fields provided")
	}

	if err := s.store.Users().Update(ctx, id, updates); err != nil {
		return nil, storeError(err, "User not found")
	}
	return s.GetUserByID(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.store.Users().Delete(ctx, id); err != nil {
		return storeError(err, "User not found")
	}
	return nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordRequest) *ServiceError {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		return storeError(err, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return newServiceError(http.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return newServiceError(http.StatusInternalServerError, "Failed to change password")
	}
	if err := s.store.Users().Update(ctx, id, map[string]interface{}{"password": string(hashed)}); err != nil {
		return storeError(err, "User not found")
	}

	log.Printf("[UserService] Password changed for user=%s", id)
	return nil
}
