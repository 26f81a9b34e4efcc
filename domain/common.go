package domain

import (
	"errors"
	"fmt"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Actor is the authenticated caller resolved by the auth middleware.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageRouteNotFound        = "route not found"
)

// Error kinds. Every error returned by a service wraps exactly one of these.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrUnexpected   = errors.New("unexpected error")
)

var (
	ErrParseUUID      = NewError(ErrInvalidInput, "failed to parse UUID")
	ErrUserNotAllowed = NewError(ErrForbidden, "user not allowed")
	ErrTokenNotFound  = NewError(ErrUnauthorized, "failed to token not found")
	ErrTokenInvalid   = NewError(ErrUnauthorized, "token invalid")
	ErrTokenExpired   = NewError(ErrUnauthorized, "token expired")
	ErrInvalidRole    = NewError(ErrUnauthorized, "invalid role")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NewError returns an error with message msg that matches kind under errors.Is.
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Unexpected tags a store or infrastructure failure. Nil stays nil.
func Unexpected(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnexpected) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnexpected, err)
}

// TotalPages is ceil(total/limit), 0 when limit is not positive.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// Paginate clamps page to [1, MaxPage] and limit to [1, MaxPageLimit], substituting
// defaultLimit for a missing limit.
func Paginate(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// Offset is the row offset of page. Arguments are expected to have gone through Paginate.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	return (page - 1) * limit
}
