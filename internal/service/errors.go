package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("invalid request parameters")
	ErrEmailExists        = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrIdentityUnresolved marks the case where a valid token refers to a
	// user that no longer exists, distinct from a generic server error.
	ErrIdentityUnresolved = errors.New("authenticated user could not be resolved")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrPostTypeInvalid    = errors.New("invalid post type")
	ErrPostUpdateDenied   = errors.New("You can only update your own posts")
	ErrPostDeleteDenied   = errors.New("You can only delete your own posts")
	ErrFollowSelf         = errors.New("you cannot follow yourself")
	ErrFollowExists       = errors.New("already following this user")
	UnExpectedError       = errors.New("unexpected error, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrEmailExists:        BadRequest,
	ErrInvalidCredentials: Unauthorized,
	ErrIdentityUnresolved: Unauthorized,
	ErrUserNotFound:       NotFound,
	ErrPostNotFound:       NotFound,
	ErrPostTypeInvalid:    BadRequest,
	ErrPostUpdateDenied:   BadRequest,
	ErrPostDeleteDenied:   BadRequest,
	ErrFollowSelf:         BadRequest,
	ErrFollowExists:       BadRequest,
	UnExpectedError:       InternalServerError,
}
