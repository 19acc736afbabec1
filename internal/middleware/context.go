package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/service"
	"github.com/windoze95/receitas-api/internal/util"
	"go.uber.org/zap"
)

// AttachUserToContext loads the authenticated user into the context. A token
// for a user that no longer exists is rejected.
func AttachUserToContext(userService *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := util.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
			return
		}

		user, err := userService.GetUserByID(userID)
		if err != nil {
			if _, ok := err.(repository.NotFoundError); ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
				return
			}
			logger.FromContext(c).Error("failed to load user", zap.Uint("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"erro": "Erro interno do servidor"})
			return
		}

		c.Set(util.UserKey, user)
		c.Next()
	}
}
