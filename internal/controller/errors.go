package controller

import (
	"errors"
	"fmt"

	"github.com/debemdeboas/postboard/internal/model"
)

var (
	ErrBusy                 = errors.New("another operation is in progress")
	ErrNotAuthenticated     = errors.New("not logged in")
	ErrAlreadyAuthenticated = errors.New("already logged in")
	ErrUnknownPost          = errors.New("post is not in the current list")
	ErrEmptyToken           = errors.New("login returned no access token")
)

type Op string

const (
	OpList   Op = "list posts"
	OpCreate Op = "create post"
	OpUpdate Op = "update post"
	OpDelete Op = "delete post"
)

// OpError reports a failed post operation. Authentication failures never
// produce one; they are shown to the user and swallowed.
type OpError struct {
	Op  Op
	ID  model.PostID
	Err error
}

func (e *OpError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
