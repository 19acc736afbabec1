package repository

import (
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FavoriteRepository is a repository for a user's favorite recipes.
type FavoriteRepository struct {
	DB *gorm.DB
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

// ToggleFavorite removes the favorite if present, otherwise adds it.
// Returns whether the recipe is a favorite afterwards.
func (r *FavoriteRepository) ToggleFavorite(userID, recipeID uint) (bool, error) {
	favorited := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		fav := models.Favorite{UserID: userID, RecipeID: recipeID}
		if err := tx.Create(&fav).Error; err != nil {
			return err
		}
		favorited = true
		return nil
	})
	if err != nil {
		logger.Get().Error("failed to toggle favorite",
			zap.Uint("user_id", userID),
			zap.Uint("recipe_id", recipeID),
			zap.Error(err))
		return false, err
	}

	return favorited, nil
}

// GetFavorites returns one page of the user's favorites, newest first,
// along with the total count.
func (r *FavoriteRepository) GetFavorites(userID uint, offset, limit int) ([]models.FavoriteRecipe, int64, error) {
	total, err := r.CountFavorites(userID)
	if err != nil {
		return nil, 0, err
	}

	favorites := []models.FavoriteRecipe{}
	err = r.DB.Table("favoritos AS f").
		Select("r.id, r.titulo, r.nota, r.avaliacoes, r.autor, r.tempo_preparo, r.link, r.imagem, f.data_favoritado").
		Joins("JOIN recipes AS r ON r.id = f.recipe_id").
		Where("f.user_id = ?", userID).
		Order("f.data_favoritado DESC, f.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&favorites).Error
	if err != nil {
		logger.Get().Error("failed to list favorites", zap.Uint("user_id", userID), zap.Error(err))
		return nil, 0, err
	}

	return favorites, total, nil
}

// CountFavorites returns how many recipes the user has favorited.
func (r *FavoriteRepository) CountFavorites(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
