package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/service"
	"go.uber.org/zap"
)

// RecipeHandler is the handler for scraped recipe requests.
type RecipeHandler struct {
	Service *service.RecipeService
}

// NewRecipeHandler is the constructor function for initializing a new RecipeHandler.
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{Service: recipeService}
}

// GetRecipe returns a recipe by ID.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeIDStr := c.Param("id")
	recipeID, err := parseUintParam(recipeIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID de receita inválido"})
		return
	}

	recipe, err := h.Service.GetRecipeByID(recipeID)
	if err != nil {
		switch err.(type) {
		case repository.NotFoundError:
			c.JSON(http.StatusNotFound, gin.H{"erro": "Receita não encontrada"})
		default:
			logger.FromContext(c).Error("failed to get recipe", zap.String("recipe_id", recipeIDStr), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar receita"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "receita": recipe})
}

// GetSurpriseRecipe returns one recipe picked at random.
func (h *RecipeHandler) GetSurpriseRecipe(c *gin.Context) {
	recipe, err := h.Service.GetSurpriseRecipe()
	if err != nil {
		switch err.(type) {
		case repository.NotFoundError:
			c.JSON(http.StatusNotFound, gin.H{"erro": "Nenhuma receita disponível"})
		default:
			logger.FromContext(c).Error("failed to draw surprise recipe", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao sortear receita"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sucesso":  true,
		"mensagem": "Receita surpresa! 🎉",
		"receita":  recipe,
	})
}
