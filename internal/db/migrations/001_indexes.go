package migrations

import (
	"github.com/windoze95/receitas-api/internal/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// lookupIndexes are the secondary indexes the read paths depend on. Older
// database files created by the scraper predate some of them.
var lookupIndexes = []struct {
	name  string
	table string
	cols  string
}{
	{"idx_ingredients_recipe_id", "ingredients", "recipe_id"},
	{"idx_recipe_steps_recipe_id", "recipe_steps", "recipe_id"},
	{"idx_favoritos_user", "favoritos", "user_id"},
	{"idx_receitas_usuario_user", "receitas_usuario", "user_id"},
}

// CreateIndexes creates the lookup indexes if they do not exist yet.
//
// This migration is idempotent: both SQLite and Postgres accept
// CREATE INDEX IF NOT EXISTS.
func CreateIndexes(db *gorm.DB) error {
	for _, idx := range lookupIndexes {
		stmt := "CREATE INDEX IF NOT EXISTS " + idx.name + " ON " + idx.table + " (" + idx.cols + ")"
		if err := db.Exec(stmt).Error; err != nil {
			logger.Get().Error("failed to create index",
				zap.String("index", idx.name),
				zap.Error(err))
			return err
		}
	}

	logger.Get().Info("lookup indexes ready", zap.Int("count", len(lookupIndexes)))
	return nil
}
