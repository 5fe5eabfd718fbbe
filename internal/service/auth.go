package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/minhle/healthtrack/backend/internal/models"
	"github.com/minhle/healthtrack/backend/internal/types"
	"github.com/minhle/healthtrack/backend/internal/validation"
)

const tokenTTL = 24 * time.Hour

// AuthService handles registration, login and token lifecycle. The redis
// client backs the logout denylist and may be nil, which disables it.
type AuthService struct {
	db        *gorm.DB
	redis     *redis.Client
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthService(db *gorm.DB, redisClient *redis.Client, jwtSecret string, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		db:        db,
		redis:     redisClient,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// RegisterInput is a new-user submission. HeightCm is optional; the store
// default of 170 cm applies when it is nil.
type RegisterInput struct {
	Username  string
	Password  string
	FullName  string
	HeightCm  *float64
	BirthDate string
	Gender    string
}

// Register validates the submission, creates the user and returns an access
// token. Field problems come back as a *ValidationError.
func (s *AuthService) Register(in RegisterInput) (string, error) {
	results := validation.ValidateRegistration(in.Username, in.Password, in.FullName, in.HeightCm)
	ok, msg := validation.ValidateBirthDate(in.BirthDate)
	results["birth_date"] = validation.FieldResult{Valid: ok, Message: msg}
	ok, msg = validation.ValidateGender(in.Gender)
	results["gender"] = validation.FieldResult{Valid: ok, Message: msg}
	if verr := NewValidationError(results); verr != nil {
		return "", verr
	}

	var existing models.User
	if err := s.db.Where("username = ?", in.Username).First(&existing).Error; err == nil {
		return "", ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("checking username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Username:     in.Username,
		PasswordHash: string(hashed),
		FullName:     in.FullName,
		HeightCm:     models.DefaultHeightCm,
		BirthDate:    in.BirthDate,
		Gender:       in.Gender,
	}
	if in.HeightCm != nil {
		user.HeightCm = *in.HeightCm
	}

	if err := s.db.Create(&user).Error; err != nil {
		return "", fmt.Errorf("creating user: %w", err)
	}
	s.logger.Info("user registered", zap.String("username", in.Username))

	return s.generateToken(user.ID, user.Username)
}

// Login verifies credentials and returns an access token.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user.ID, user.Username)
}

// Logout denylists the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.redis == nil {
		return nil
	}
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ErrInvalidToken
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, denylistKey(token), "1", ttl).Err()
}

// ValidateToken parses and verifies a token, rejecting denylisted ones.
func (s *AuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		n, err := s.redis.Exists(context.Background(), denylistKey(token)).Result()
		if err != nil {
			s.logger.Error("denylist check failed", zap.Error(err))
		} else if n > 0 {
			return nil, ErrInvalidToken
		}
	}

	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return &types.TokenClaims{UserID: userID, Username: username}, nil
}

func (s *AuthService) generateToken(userID uuid.UUID, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"username": username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parse(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func denylistKey(token string) string {
	return "auth:denylist:" + token
}
