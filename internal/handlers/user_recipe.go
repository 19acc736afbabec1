package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/service"
	"github.com/windoze95/receitas-api/internal/util"
	"go.uber.org/zap"
)

// UserRecipeHandler serves recipes submitted by users.
type UserRecipeHandler struct {
	Service *service.UserRecipeService
}

// NewUserRecipeHandler creates a new UserRecipeHandler.
func NewUserRecipeHandler(userRecipeService *service.UserRecipeService) *UserRecipeHandler {
	return &UserRecipeHandler{Service: userRecipeService}
}

// CreateUserRecipe handles POST /receitas
func (h *UserRecipeHandler) CreateUserRecipe(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
		return
	}

	var input service.UserRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados não fornecidos"})
		return
	}

	recipe, err := h.Service.CreateUserRecipe(userID, input)
	if err != nil {
		var verr service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"erro": verr.Message})
			return
		}
		logger.FromContext(c).Error("failed to create user recipe", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao criar receita"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sucesso":    true,
		"mensagem":   "Receita criada com sucesso",
		"receita_id": recipe.ID,
	})
}

// ListUserRecipes handles GET /receitas/minhas?pagina=N
func (h *UserRecipeHandler) ListUserRecipes(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
		return
	}

	page, err := h.Service.ListUserRecipes(userID, parsePageParam(c.Query("pagina")))
	if err != nil {
		logger.FromContext(c).Error("failed to list user recipes", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar receitas"})
		return
	}

	c.JSON(http.StatusOK, listEnvelope(page.Number, page.Total, page.HasMore, page.Items))
}

// GetUserRecipe handles GET /receitas/minhas/:id
func (h *UserRecipeHandler) GetUserRecipe(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
		return
	}

	recipeID, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID de receita inválido"})
		return
	}

	recipe, err := h.Service.GetUserRecipe(userID, recipeID)
	if err != nil {
		switch err.(type) {
		case repository.NotFoundError:
			c.JSON(http.StatusNotFound, gin.H{"erro": "Receita não encontrada"})
		default:
			logger.FromContext(c).Error("failed to get user recipe", zap.Uint("recipe_id", recipeID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar receita"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "receita": recipe})
}
