package jwt

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(staffID, companyID, role string, isAdmin bool) (token string, expiresAt int64, err error)
	GenerateSSEToken(staffID, companyID string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (companyID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(staffID, companyID, role string, isAdmin bool) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"staff_id":   staffID,
		"company_id": companyID,
		"role":       role,
		"is_admin":   isAdmin,
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// GenerateSSEToken issues a short-lived token passed as a query parameter,
// since EventSource cannot set an Authorization header.
func (j *JWTService) GenerateSSEToken(staffID, companyID string) (token string, expiresIn int, err error) {
	const ttl = 60 * time.Second

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"staff_id":   staffID,
		"company_id": companyID,
		"type":       "sse",
		"exp":        time.Now().Add(ttl).Unix(),
	})
	return tokenString, int(ttl.Seconds()), err
}

func (j *JWTService) ValidateSSEToken(tokenString string) (companyID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", fmt.Errorf("failed to decode sse token: %w", err)
	}
	if err := jwt.Validate(token); err != nil {
		return "", fmt.Errorf("sse token invalid: %w", err)
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", fmt.Errorf("failed to read sse token claims: %w", err)
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != "sse" {
		return "", fmt.Errorf("token is not an sse token")
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
