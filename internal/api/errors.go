package api

import (
	"errors"
	"fmt"
)

// Kind identifies which operation a backend failure belongs to.
type Kind int

const (
	KindAuthentication Kind = iota + 1
	KindRegistration
	KindTransform
	KindHistory
)

var (
	ErrAuthentication = errors.New("authentication failed")
	ErrRegistration   = errors.New("registration failed")
	ErrTransform      = errors.New("transform failed")
	ErrHistory        = errors.New("history unavailable")
)

var kindErrors = map[Kind]error{
	KindAuthentication: ErrAuthentication,
	KindRegistration:   ErrRegistration,
	KindTransform:      ErrTransform,
	KindHistory:        ErrHistory,
}

// Error is a non-success answer from the backend. It matches the sentinel for
// its Kind under errors.Is.
type Error struct {
	Kind       Kind
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	base := kindErrors[e.Kind]
	if base == nil {
		base = errors.New("request failed")
	}
	if e.Detail == "" {
		return fmt.Sprintf("%v: HTTP %d", base, e.StatusCode)
	}
	return fmt.Sprintf("%v: HTTP %d: %s", base, e.StatusCode, e.Detail)
}

func (e *Error) Is(target error) bool {
	return kindErrors[e.Kind] == target
}
