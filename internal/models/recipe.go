package models

// Recipe is the model for a scraped recipe. Column names follow the
// scraper's schema, which owns these tables.
type Recipe struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Title          string       `gorm:"column:titulo" json:"titulo"`
	Rating         string       `gorm:"column:nota" json:"nota"`
	ReviewCount    string       `gorm:"column:avaliacoes" json:"avaliacoes"`
	Author         string       `gorm:"column:autor" json:"autor"`
	PrepTime       string       `gorm:"column:tempo_preparo" json:"tempo_preparo"`
	Link           string       `gorm:"column:link" json:"link"`
	Image          string       `gorm:"column:imagem" json:"imagem"`
	Description    string       `gorm:"column:descricao" json:"descricao"`
	AdditionalInfo string       `gorm:"column:informacoes_adicionais" json:"informacoes_adicionais"`
	Ingredients    []Ingredient `gorm:"foreignKey:RecipeID" json:"-"`
	Steps          []RecipeStep `gorm:"foreignKey:RecipeID" json:"-"`
}

// TableName overrides the default pluralized table name.
func (Recipe) TableName() string { return "recipes" }

// Ingredient is one ingredient line of a recipe.
type Ingredient struct {
	ID       uint   `gorm:"primaryKey"`
	RecipeID uint   `gorm:"index"`
	Item     string `gorm:"column:item"`
}

func (Ingredient) TableName() string { return "ingredients" }

// RecipeStep is one preparation step of a recipe.
type RecipeStep struct {
	ID       uint   `gorm:"primaryKey"`
	RecipeID uint   `gorm:"index"`
	Position int    `gorm:"column:position"`
	Text     string `gorm:"column:text"`
}

func (RecipeStep) TableName() string { return "recipe_steps" }

// IngredientItems returns the ingredient lines in stored order.
func (r *Recipe) IngredientItems() []string {
	items := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		items = append(items, ing.Item)
	}
	return items
}

// StepTexts returns the preparation steps in stored order.
func (r *Recipe) StepTexts() []string {
	texts := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		texts = append(texts, s.Text)
	}
	return texts
}
