package services

import (
	"context"
	stderrors "errors"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wanderai/wanderai-backend/errors"
	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/store"
	"github.com/wanderai/wanderai-backend/types"
)

// Claims carried in issued access tokens.
type Claims struct {
	UserID string         `json:"sub"`
	Email  string         `json:"email"`
	Role   types.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles account authentication and token lifecycle on top of
// an injected account repository.
type AuthService struct {
	users  store.UserStore
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewAuthService creates the service. now is injectable for tests; nil means
// time.Now.
func NewAuthService(users store.UserStore, secret string, expiry time.Duration, now func() time.Time) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{users: users, secret: []byte(secret), expiry: expiry, now: now}
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req types.LoginRequest) (*types.User, string, error) {
	log := logger.GetLogger()

	record, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Infow("Login failed, unknown email", "email", logger.MaskEmail(req.Email))
		return nil, "", errors.AuthenticationFailed(errors.CodeBadCredentials, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(req.Password)); err != nil {
		log.Infow("Login failed, wrong password", "email", logger.MaskEmail(req.Email))
		return nil, "", errors.AuthenticationFailed(errors.CodeBadCredentials, "Invalid email or password")
	}

	token, err := s.issueToken(&record.User)
	if err != nil {
		return nil, "", err
	}

	log.Infow("User logged in", "userId", record.ID, "email", logger.MaskEmail(record.Email))
	user := record.User
	return &user, token, nil
}

// Signup registers a new account and logs it in.
func (s *AuthService) Signup(ctx context.Context, req types.SignupRequest) (*types.User, string, error) {
	log := logger.GetLogger()

	if err := validatePassword(req.Password); err != nil {
		return nil, "", err
	}

	record := &store.UserRecord{
		User: types.User{
			ID:        uuid.NewString(),
			Email:     req.Email,
			Name:      req.Name,
			Role:      types.RoleUser,
			CreatedAt: s.now().UTC(),
		},
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.InternalServerError("Failed to hash password")
	}
	record.PasswordHash = string(hash)

	if err := s.users.Create(ctx, record); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(&record.User)
	if err != nil {
		return nil, "", err
	}

	log.Infow("User registered", "userId", record.ID, "email", logger.MaskEmail(record.Email))
	user := record.User
	return &user, token, nil
}

// validatePassword enforces the account password policy: at least 8
// characters with an uppercase letter, a lowercase letter and a digit.
func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.ValidationFailed("Password too weak", "password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	switch {
	case !hasUpper:
		return errors.ValidationFailed("Password too weak", "password must contain an uppercase letter")
	case !hasLower:
		return errors.ValidationFailed("Password too weak", "password must contain a lowercase letter")
	case !hasDigit:
		return errors.ValidationFailed("Password too weak", "password must contain a number")
	}
	return nil
}

// VerifyToken parses and validates an access token, returning its claims.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.AuthenticationFailed(errors.CodeTokenMalformed, "Unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.AuthenticationFailed(errors.CodeTokenExpired, "Token has expired")
		}
		return nil, errors.AuthenticationFailed(errors.CodeTokenMalformed, "Invalid token")
	}
	if !token.Valid {
		return nil, errors.AuthenticationFailed(errors.CodeTokenMalformed, "Invalid token")
	}
	return claims, nil
}

// GetUser returns the public account for an ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (*types.User, error) {
	record, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user := record.User
	return &user, nil
}

// ListUsers returns all public accounts, for the admin surface.
func (s *AuthService) ListUsers(ctx context.Context) ([]types.User, error) {
	records, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]types.User, 0, len(records))
	for _, record := range records {
		users = append(users, record.User)
	}
	return users, nil
}

func (s *AuthService) issueToken(user *types.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.InternalServerError("Failed to sign token")
	}
	return signed, nil
}
