package repository

import (
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserRepository is a repository for interacting with users.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser creates a new user. A taken email yields ErrEmailTaken.
func (r *UserRepository) CreateUser(user *models.User) (*models.User, error) {
	if err := r.DB.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		logger.Get().Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (r *UserRepository) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError{message: "user not found"}
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by their (already lower-cased) email.
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError{message: "user not found"}
		}
		return nil, err
	}

	return &user, nil
}

// Ensure the concrete type satisfies the interface.
var _ UserRepo = (*UserRepository)(nil)
