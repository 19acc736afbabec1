package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/service"
	"github.com/windoze95/receitas-api/internal/util"
	"go.uber.org/zap"
)

// FavoriteHandler serves the favorites endpoints.
type FavoriteHandler struct {
	Service *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Service: favoriteService}
}

// ToggleFavorite handles POST /receitas/:id/favoritar
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
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

	favorited, err := h.Service.ToggleFavorite(userID, recipeID)
	if err != nil {
		switch err.(type) {
		case repository.NotFoundError:
			c.JSON(http.StatusNotFound, gin.H{"erro": "Receita não encontrada"})
		default:
			logger.FromContext(c).Error("failed to toggle favorite", zap.Uint("recipe_id", recipeID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao favoritar receita"})
		}
		return
	}

	message := "Receita removida dos favoritos"
	if favorited {
		message = "Receita adicionada aos favoritos"
	}
	c.JSON(http.StatusOK, gin.H{
		"sucesso":    true,
		"mensagem":   message,
		"favoritado": favorited,
	})
}

// ListFavorites handles GET /receitas/favoritos?pagina=N
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
		return
	}

	page, err := h.Service.ListFavorites(userID, parsePageParam(c.Query("pagina")))
	if err != nil {
		logger.FromContext(c).Error("failed to list favorites", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar favoritos"})
		return
	}

	c.JSON(http.StatusOK, listEnvelope(page.Number, page.Total, page.HasMore, page.Items))
}
