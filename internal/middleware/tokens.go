package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/util"
	"go.uber.org/zap"
)

const bearerScheme = "Bearer"

// VerifyTokenMiddleware verifies the JWT token provided in the Authorization
// header. The "Bearer " prefix is optional.
func VerifyTokenMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "Token não fornecido"})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.EnvVars.JwtSecretKey), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "Token expirado"})
				return
			}
			logger.FromContext(c).Debug("rejected token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
			return
		}
		if !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
			return
		}

		// Only access tokens are accepted here
		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "access" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
			return
		}

		// Type assert to float64 (default for JSON numbers)
		idFloat, ok := claims["user_id"].(float64)
		if !ok || idFloat < 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
			return
		}

		c.Set(util.UserIDKey, uint(idFloat))
		c.Next()
	}
}

// bearerToken strips an optional "Bearer" scheme from the header value.
func bearerToken(header string) string {
	token := strings.TrimSpace(header)
	if len(token) >= len(bearerScheme) && strings.EqualFold(token[:len(bearerScheme)], bearerScheme) {
		token = strings.TrimSpace(token[len(bearerScheme):])
	}
	return token
}
