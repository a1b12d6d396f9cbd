package auth

import (
	"errors"
	"fmt"
	"net/mail"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nisuz/decorhavenstore/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingField       = errors.New("missing required field")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidToken       = errors.New("invalid token")
)

type storedUser struct {
	user         domain.User
	passwordHash []byte
}

// Service is the mock authentication collaborator: registration keeps
// users in memory, and login accepts any syntactically valid email
// even for unregistered users, handing out a demo profile. Sessions
// are JWTs carrying the user id.
type Service struct {
	mu       sync.RWMutex
	byEmail  map[string]*storedUser
	secret   []byte
	tokenTTL time.Duration
}

func NewService(secret string) *Service {
	return &Service{
		byEmail:  make(map[string]*storedUser),
		secret:   []byte(secret),
		tokenTTL: 24 * time.Hour,
	}
}

type RegisterParams struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	BillingAddress  domain.Address
	DeliveryAddress domain.Address
}

func (s *Service) Register(params RegisterParams) (*domain.User, error) {
	if params.Name == "" || params.Email == "" || params.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrMissingField)
	}
	if params.Password != params.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if _, err := mail.ParseAddress(params.Email); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, params.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[params.Email]; exists {
		return nil, ErrEmailTaken
	}

	user := domain.User{
		ID:              uuid.New().String(),
		Name:            params.Name,
		Email:           params.Email,
		Phone:           params.Phone,
		BillingAddress:  params.BillingAddress,
		DeliveryAddress: params.DeliveryAddress,
	}
	s.byEmail[params.Email] = &storedUser{user: user, passwordHash: hash}
	return &user, nil
}

// Login verifies the password for registered users. An unregistered
// but syntactically valid email gets a demo profile, keeping the
// storefront usable without an account.
func (s *Service) Login(email, password string) (string, *domain.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	s.mu.RLock()
	stored, exists := s.byEmail[email]
	s.mu.RUnlock()

	var user domain.User
	if exists {
		if err := bcrypt.CompareHashAndPassword(stored.passwordHash, []byte(password)); err != nil {
			return "", nil, ErrInvalidCredentials
		}
		user = stored.user
	} else {
		user = demoUser(email)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *Service) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// UserID validates the token and returns the subject.
func (s *Service) UserID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

func demoUser(email string) domain.User {
	addr := domain.Address{
		Street:     "123 Main St",
		City:       "Anytown",
		State:      "State",
		PostalCode: "12345",
		Country:    "Country",
	}
	return domain.User{
		ID:              uuid.New().String(),
		Name:            "Demo User",
		Email:           email,
		Phone:           "123-456-7890",
		BillingAddress:  addr,
		DeliveryAddress: addr,
	}
}
