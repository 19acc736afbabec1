package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// User is the model for a registered account.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"column:nome;not null" json:"nome"`
	Email        string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:senha_hash;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:data_criacao;autoCreateTime" json:"data_criacao"`
}

func (User) TableName() string { return "users" }

// BeforeCreate is a GORM hook that normalizes the email before insert.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" {
		// Cancel transaction
		return errors.New("email must not be empty")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash must not be empty")
	}

	return nil
}

// Favorite links a user to a recipe they marked. A pair appears at most once.
type Favorite struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"column:user_id;not null;uniqueIndex:idx_favoritos_user_recipe"`
	RecipeID    uint      `gorm:"column:recipe_id;not null;uniqueIndex:idx_favoritos_user_recipe"`
	FavoritedAt time.Time `gorm:"column:data_favoritado;autoCreateTime"`
}

func (Favorite) TableName() string { return "favoritos" }

// FavoriteRecipe is a favorited recipe summary with the time it was marked.
type FavoriteRecipe struct {
	ID          uint      `json:"id"`
	Title       string    `gorm:"column:titulo" json:"titulo"`
	Rating      string    `gorm:"column:nota" json:"nota"`
	ReviewCount string    `gorm:"column:avaliacoes" json:"avaliacoes"`
	Author      string    `gorm:"column:autor" json:"autor"`
	PrepTime    string    `gorm:"column:tempo_preparo" json:"tempo_preparo"`
	Link        string    `gorm:"column:link" json:"link"`
	Image       string    `gorm:"column:imagem" json:"imagem"`
	FavoritedAt time.Time `gorm:"column:data_favoritado" json:"data_favoritado"`
}
