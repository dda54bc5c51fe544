package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"appleaday/internal/models"
	"appleaday/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the single error returned for any login failure.
// It never reveals which factor was wrong.
var ErrInvalidCredentials = errors.New("unable to log in with provided credentials")

// ErrEmailTaken is returned when registering with an email already in use.
var ErrEmailTaken = errors.New("a user with this email already exists")

// UserService handles registration, authentication and profile management.
type UserService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, jwtSecret string) *UserService {
	return &UserService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// NormalizeEmail lowercases the domain part of an email address, leaving the
// local part untouched.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// CreateUser registers a new user with a hashed password and normalized
// email.
func (s *UserService) CreateUser(email, password, name string) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("email must not be empty")
	}

	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
		IsActive: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// CreateSuperuser registers a user with staff and superuser flags set.
func (s *UserService) CreateSuperuser(email, password string) (*models.User, error) {
	user, err := s.CreateUser(email, password, "")
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to promote superuser: %w", err)
	}
	return user, nil
}

// Login authenticates by email and password and returns a signed bearer
// token. Every failure collapses into ErrInvalidCredentials.
func (s *UserService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(NormalizeEmail(email))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
		"jti":     uuid.New().String(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a bearer token, returning the claims if
// valid.
func (s *UserService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		logrus.WithError(err).Debug("token validation error")
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GetProfile returns the user for the given ID.
func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// ProfilePatch carries the optional fields of a partial profile update.
type ProfilePatch struct {
	Email    *string
	Name     *string
	Password *string
}

// UpdateProfile applies a partial update to the user's profile. A new
// password is re-hashed before saving; a new email must not belong to
// another user.
func (s *UserService) UpdateProfile(userID uint, patch ProfilePatch) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		email := NormalizeEmail(*patch.Email)
		if email != user.Email {
			if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil && existing.ID != userID {
				return nil, ErrEmailTaken
			}
		}
		user.Email = email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
