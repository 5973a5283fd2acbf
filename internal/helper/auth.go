package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/dto"
)

type Auth struct {
	Secret        string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func SetupAuth(secret, refreshSecret string, accessTTL, refreshTTL time.Duration) Auth {
	return Auth{
		Secret:        secret,
		RefreshSecret: refreshSecret,
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
}

// GenerateTokens issues the access/refresh pair for a user.
func (a Auth) GenerateTokens(userID uint, email string) (dto.TokenPair, error) {
	if userID == 0 || email == "" {
		return dto.TokenPair{}, errors.New("required inputs are missing to generate token")
	}

	access, err := a.sign(userID, email, a.Secret, a.AccessTTL)
	if err != nil {
		return dto.TokenPair{}, err
	}
	refresh, err := a.sign(userID, email, a.RefreshSecret, a.RefreshTTL)
	if err != nil {
		return dto.TokenPair{}, err
	}
	return dto.TokenPair{Token: access, RefreshToken: refresh}, nil
}

func (a Auth) sign(userID uint, email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken accepts either "Bearer <token>" or the bare token.
func (a Auth) VerifyAccessToken(tokenString string) (dto.AuthClaims, error) {
	return a.verify(tokenString, a.Secret)
}

func (a Auth) VerifyRefreshToken(tokenString string) (dto.AuthClaims, error) {
	return a.verify(tokenString, a.RefreshSecret)
}

func (a Auth) verify(tokenString, secret string) (dto.AuthClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		tokenString = strings.TrimSpace(parts[1])
	}
	if tokenString == "" {
		return dto.AuthClaims{}, apperr.Unauthorized(apperr.CodeUnauthorized, "access token required")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return dto.AuthClaims{}, apperr.Unauthorized(apperr.CodeTokenExpired, "token has expired")
		}
		return dto.AuthClaims{}, apperr.Unauthorized(apperr.CodeInvalidToken, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return dto.AuthClaims{}, apperr.Unauthorized(apperr.CodeInvalidToken, "invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return dto.AuthClaims{}, apperr.Unauthorized(apperr.CodeInvalidToken, "invalid token claims")
	}
	email, _ := claims["email"].(string)
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)

	return dto.AuthClaims{
		UserID: uint(userID),
		Email:  email,
		Iat:    int64(iat),
		Exp:    int64(exp),
	}, nil
}

func (a Auth) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return apperr.Unauthorized(apperr.CodeUnauthorized, "invalid email or password")
	}
	return nil
}
