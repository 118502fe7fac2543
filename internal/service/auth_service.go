package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/repository"
)

// --- Error Definitions ---
var (
	ErrMissingFields        = errors.New("missing required fields")
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid username or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrUnknownSubject       = errors.New("token subject no longer exists")
)

// RegisterInput carries the sign-up form.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Nickname string
}

// Claims is the JWT payload: {id, username} plus the registered claims.
type Claims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService registers users, checks credentials and issues tokens.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (user *domain.User, token string, err error)
	Login(ctx context.Context, username, password string) (user *domain.User, token string, err error)
	// Authenticate verifies a bearer token and resolves its subject.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     []byte
	jwtExpiration time.Duration
	issuer        string
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiration time.Duration, issuer string) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 30 * 24 * time.Hour
	}
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: jwtExpiration,
		issuer:        issuer,
	}
}

// Register creates the account with the profile defaults and signs a token for it.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	if in.Username == "" || in.Password == "" || in.Email == "" {
		return nil, "", fmt.Errorf("%w: username, password and email", ErrMissingFields)
	}

	_, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err == nil {
		return nil, "", ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrHashingFailed
	}

	nickname := in.Nickname
	if nickname == "" {
		nickname = in.Username
	}
	user := &domain.User{
		Username:  in.Username,
		Password:  string(hashedPassword),
		Email:     in.Email,
		Nickname:  nickname,
		Avatar:    domain.DefaultAvatarURL(in.Username),
		Expertise: []string{},
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		// Another request registered the same name between the check and Create.
		if errors.Is(err, repository.ErrConflict) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, "", ErrTokenGeneration
	}
	return user, token, nil
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password", ErrMissingFields)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrAuthenticationFailed
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrAuthenticationFailed
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, "", ErrTokenGeneration
	}
	return user, token, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.parseJWT(strings.TrimSpace(token))
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}
	return user, nil
}

// --- JWT Helpers ---

func (s *authService) generateJWT(user *domain.User) (string, error) {
	issuedAt := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    s.issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *authService) parseJWT(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
