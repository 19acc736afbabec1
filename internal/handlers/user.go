package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/service"
	"github.com/windoze95/receitas-api/internal/util"
	"go.uber.org/zap"
)

// UserHandler is the handler for account requests.
type UserHandler struct {
	Service *service.UserService
}

// NewUserHandler is the constructor function for initializing a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{Service: userService}
}

// CreateUser handles POST /auth/registro
func (h *UserHandler) CreateUser(c *gin.Context) {
	var newUser struct {
		Name     string `json:"nome"`
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	if err := c.ShouldBindJSON(&newUser); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados não fornecidos"})
		return
	}

	user, err := h.Service.CreateUser(newUser.Name, newUser.Email, newUser.Password)
	if err != nil {
		var verr service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"erro": verr.Message})
			return
		}
		logger.FromContext(c).Error("failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao registrar usuário"})
		return
	}

	// Log the user in
	accessToken, err := h.generateAccessToken(user.ID)
	if err != nil {
		logger.FromContext(c).Error("failed to generate access token on signup", zap.Uint("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao registrar usuário"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sucesso":  true,
		"mensagem": "Usuário registrado com sucesso",
		"token":    accessToken,
		"usuario":  service.ToUserResponse(user),
	})
}

// LoginUser handles POST /auth/login
func (h *UserHandler) LoginUser(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados não fornecidos"})
		return
	}
	if credentials.Email == "" || credentials.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Email e senha são obrigatórios"})
		return
	}

	user, err := h.Service.LoginUser(credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Email ou senha incorretos"})
			return
		}
		logger.FromContext(c).Error("failed to log user in", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao fazer login"})
		return
	}

	accessToken, err := h.generateAccessToken(user.ID)
	if err != nil {
		logger.FromContext(c).Error("failed to generate access token on login", zap.Uint("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao fazer login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sucesso":  true,
		"mensagem": "Login realizado com sucesso",
		"token":    accessToken,
		"usuario":  service.ToUserResponse(user),
	})
}

// GetProfile handles GET /auth/perfil
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := util.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
		return
	}

	profile, err := h.Service.GetProfile(user)
	if err != nil {
		logger.FromContext(c).Error("failed to load profile", zap.Uint("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar perfil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "usuario": profile})
}

func (h *UserHandler) generateAccessToken(userID uint) (string, error) {
	ttl := time.Duration(h.Service.Cfg.EnvVars.TokenExpirationDays) * 24 * time.Hour
	return generateAccessToken(userID, h.Service.Cfg.EnvVars.JwtSecretKey, ttl)
}

// generateAccessToken generates a JWT access token valid for ttl.
func generateAccessToken(userID uint, secretKey string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(ttl).Unix(),
		"iat":     now.Unix(),
		"type":    "access",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("generateAccessToken: %w", err)
	}
	return tokenString, nil
}
