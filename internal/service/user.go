package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	goaway "github.com/TwiN/go-away"
	"github.com/asaskevich/govalidator"
	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/models"
	"github.com/windoze95/receitas-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	minNameLength     = 2
	minPasswordLength = 6
	bcryptCost        = 10
)

// UserService is the business logic layer for user-related operations.
type UserService struct {
	Cfg            *config.Config
	Repo           repository.UserRepo
	FavoriteRepo   repository.FavoriteRepo
	UserRecipeRepo repository.UserRecipeRepo
}

// UserResponse is the response object for user-related operations.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"data_criacao"`
}

// ProfileResponse is a user with their activity counters.
type ProfileResponse struct {
	UserResponse
	TotalFavorites   int64 `json:"total_favoritos"`
	TotalUserRecipes int64 `json:"total_receitas"`
}

// NewUserService is the constructor function for initializing a new UserService
func NewUserService(cfg *config.Config, repo repository.UserRepo, favoriteRepo repository.FavoriteRepo, userRecipeRepo repository.UserRecipeRepo) *UserService {
	return &UserService{
		Cfg:            cfg,
		Repo:           repo,
		FavoriteRepo:   favoriteRepo,
		UserRecipeRepo: userRecipeRepo,
	}
}

// CreateUser validates the registration fields and creates a new user.
func (s *UserService) CreateUser(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := s.ValidateName(name); err != nil {
		return nil, err
	}
	if err := s.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := s.ValidatePassword(password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	user, err = s.Repo.CreateUser(user)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ValidationError{Message: "Email já cadastrado"}
		}
		return nil, err
	}

	return user, nil
}

// LoginUser checks the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) LoginUser(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.GetUserByEmail(email)
	if err != nil {
		var notFound repository.NotFoundError
		if errors.As(err, &notFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ToUserResponse converts a User to a UserResponse.
func ToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// GetUserByID gets a user by their ID.
func (s *UserService) GetUserByID(userID uint) (*models.User, error) {
	return s.Repo.GetUserByID(userID)
}

// GetProfile returns the user with favorite and submitted-recipe counts.
func (s *UserService) GetProfile(user *models.User) (*ProfileResponse, error) {
	favorites, err := s.FavoriteRepo.CountFavorites(user.ID)
	if err != nil {
		return nil, err
	}
	recipes, err := s.UserRecipeRepo.CountUserRecipes(user.ID)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		UserResponse:     *ToUserResponse(user),
		TotalFavorites:   favorites,
		TotalUserRecipes: recipes,
	}, nil
}

// ValidateName validates a display name against a set of rules.
func (s *UserService) ValidateName(name string) error {
	if utf8.RuneCountInString(name) < minNameLength {
		return ValidationError{Message: "Nome deve ter pelo menos 2 caracteres"}
	}
	if isProfane(name) {
		return ValidationError{Message: "Nome contém linguagem inapropriada"}
	}
	return nil
}

// ValidateEmail validates an email address against a set of rules.
func (s *UserService) ValidateEmail(email string) error {
	if !govalidator.IsEmail(email) {
		return ValidationError{Message: "Email inválido"}
	}
	return nil
}

// ValidatePassword validates a password against a set of rules.
func (s *UserService) ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ValidationError{Message: "Senha deve ter pelo menos 6 caracteres"}
	}
	return nil
}

// Accents are kept so Portuguese words are not folded into English matches.
var profanityDetector = goaway.NewProfanityDetector().
	WithSanitizeLeetSpeak(true).
	WithSanitizeSpecialCharacters(true).
	WithSanitizeAccents(false)

func isProfane(s string) bool {
	return profanityDetector.IsProfane(s)
}
