package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const memberIDContextKey = "memberID"

type memberClaims struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
}

func parseMemberJWT(jwtStr string, decodeToken string) (*memberClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	out := memberClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = int64(exp)
	}

	return &out, nil
}

func (m ApiHandler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		jwtStr := strings.TrimPrefix(authHeader, "Bearer ")
		if jwtStr == "" {
			returnErrorJsonCode(fmt.Errorf("missing auth token"), c, 401)
			return
		}

		claims, err := parseMemberJWT(jwtStr, m.JwtDecodeToken)
		if err != nil {
			returnErrorJsonCode(err, c, 401)
			return
		}

		memberID, err := uuid.Parse(claims.Subject)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("misformatted member id: %w", err), c, 401)
			return
		}

		c.Set(memberIDContextKey, memberID)
		c.Next()
	}
}

func memberIDFromContext(c *gin.Context) (uuid.UUID, error) {
	value, ok := c.Get(memberIDContextKey)
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	memberID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted member id")
	}
	return memberID, nil
}
