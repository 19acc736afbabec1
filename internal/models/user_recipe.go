package models

import (
	"strings"
	"time"
)

// UserRecipe is a recipe submitted by a user. Ingredients and steps are
// stored newline-joined.
type UserRecipe struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"column:user_id;not null;index:idx_receitas_usuario_user"`
	Title       string    `gorm:"column:titulo;not null"`
	Description string    `gorm:"column:descricao"`
	PrepTime    string    `gorm:"column:tempo_preparo"`
	Ingredients string    `gorm:"column:ingredientes;type:text;not null"`
	Steps       string    `gorm:"column:modo_preparo;type:text;not null"`
	Image       string    `gorm:"column:imagem"`
	CreatedAt   time.Time `gorm:"column:data_criacao;autoCreateTime"`
}

func (UserRecipe) TableName() string { return "receitas_usuario" }

// IngredientList splits the stored ingredients into lines.
func (r *UserRecipe) IngredientList() []string { return SplitLines(r.Ingredients) }

// StepList splits the stored preparation steps into lines.
func (r *UserRecipe) StepList() []string { return SplitLines(r.Steps) }

// JoinLines trims each entry, drops blanks and joins the rest with newlines.
func JoinLines(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

// SplitLines is the inverse of JoinLines.
func SplitLines(s string) []string {
	out := []string{}
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
