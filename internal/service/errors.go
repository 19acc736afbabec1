package service

import "errors"

// ValidationError reports user input that breaks a business rule. Its
// message is safe to show to the client as is.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ErrInvalidCredentials is returned by LoginUser for any email/password mismatch.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ListPage is one page of a SQL-paginated listing.
type ListPage[T any] struct {
	Number  int
	Total   int
	HasMore bool
	Items   []T
}
