package utils

import (
	"errors"
	"time"

	"github.com/mdowais-techno/team-hub-server/config"

	"github.com/golang-jwt/jwt/v5"
)

type TokenClaims struct {
	UserID       uint   `json:"user_id"`
	Role         string `json:"role"`
	DepartmentID *uint  `json:"department_id,omitempty"`
	JobProfileID *uint  `json:"job_profile_id,omitempty"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role string, departmentID, jobProfileID *uint) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID:       userID,
		Role:         role,
		DepartmentID: departmentID,
		JobProfileID: jobProfileID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.AppConfig.JWT.ExpireHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWT.Secret))
}

func ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
