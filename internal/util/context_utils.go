package util

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/receitas-api/internal/models"
)

// Context keys set by the auth middleware.
const (
	UserIDKey = "user_id"
	UserKey   = "user"
)

var (
	errNoUser    = errors.New("no user information")
	errNoUserID  = errors.New("no user ID information")
	errWrongType = errors.New("user information is of the wrong type")
)

// GetUserFromContext gets the user attached by AttachUserToContext.
func GetUserFromContext(c *gin.Context) (*models.User, error) {
	val, ok := c.Get(UserKey)
	if !ok {
		return nil, errNoUser
	}

	user, ok := val.(*models.User)
	if !ok || user == nil {
		return nil, errWrongType
	}

	return user, nil
}

// GetUserIDFromContext gets the user ID taken from a verified token.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	val, ok := c.Get(UserIDKey)
	if !ok {
		return 0, errNoUserID
	}

	userID, ok := val.(uint)
	if !ok {
		return 0, errWrongType
	}

	return userID, nil
}
