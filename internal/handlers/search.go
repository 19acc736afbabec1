package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/service"
	"go.uber.org/zap"
)

// SearchHandler serves ingredient searches.
type SearchHandler struct {
	Service *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{Service: searchService}
}

// SearchRecipes handles GET /receitas?ingredientes=a,b&pagina=N
func (h *SearchHandler) SearchRecipes(c *gin.Context) {
	ingredients, problem := parseIngredientsParam(c.Query("ingredientes"))
	if problem != "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": problem})
		return
	}
	page := parsePageParam(c.Query("pagina"))

	result, err := h.Service.SearchRecipes(c.Request.Context(), ingredients, page)
	if err != nil {
		logger.FromContext(c).Error("failed to search recipes", zap.Strings("ingredients", ingredients), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar receitas"})
		return
	}

	resp := listEnvelope(result.Number, result.Total, result.HasMore, result.Items)
	resp["ingredientes"] = result.Ingredients
	c.JSON(http.StatusOK, resp)
}
