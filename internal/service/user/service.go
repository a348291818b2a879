package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"stylegenie-backend/internal/domain"
	userrepo "stylegenie-backend/internal/repository/user"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrMissingFields is returned when a required signup/signin field is empty.
	ErrMissingFields = errors.New("all fields are required")
)

// Service handles signup/signin and admin user listings.
type Service struct {
	repo      userRepo
	jwtSecret []byte
	tokenTTL  time.Duration
}

type userRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListWithOrderStats(ctx context.Context) ([]domain.UserOrderStats, error)
}

func New(repo userRepo, jwtSecret string) *Service {
	return &Service{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Hour,
	}
}

// SignupInput captures fields expected by the signup endpoint.
type SignupInput struct {
	FullName        string `json:"fullName"`
	MobileNumber    string `json:"mobileNumber"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Signup registers a new user with a bcrypt-hashed password.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	if strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.MobileNumber) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		in.Password == "" || in.ConfirmPassword == "" {
		return nil, ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, domain.User{
		FullName:     strings.TrimSpace(in.FullName),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		Email:        strings.TrimSpace(strings.ToLower(in.Email)),
		PasswordHash: string(hashed),
	})
}

// Signin validates credentials and returns the user plus a signed JWT.
func (s *Service) Signin(ctx context.Context, email, password string) (*domain.User, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", ErrMissingFields
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": u.ID,
		"iat":    now.Unix(),
		"exp":    now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return u, signed, nil
}

// VerifyToken parses a token issued by Signin and returns the user id.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	userID, _ := claims["userId"].(string)
	if userID == "" {
		return "", ErrInvalidCredentials
	}
	return userID, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListWithOrderStats returns all users with their order aggregates.
func (s *Service) ListWithOrderStats(ctx context.Context) ([]domain.UserOrderStats, error) {
	return s.repo.ListWithOrderStats(ctx)
}

// IsEmailTaken reports whether err is the duplicate-email failure.
func IsEmailTaken(err error) bool {
	return errors.Is(err, userrepo.ErrEmailTaken)
}
