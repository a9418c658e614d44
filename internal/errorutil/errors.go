// Package errorutil holds sentinel error helpers for header parsing and formatting.
package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghettovoice/gohttp/internal/util"
)

// Error is a constant error kind, usable as a sentinel in [errors.Is].
type Error string

func (e Error) Error() string { return string(e) }

// NewWrapperError attaches kind to the first element of args.
//
// With no args kind itself is returned.
// An error argument is wrapped unless it already matches kind.
// A string argument becomes the message, formatted with the remaining args when present.
// Any other argument is ignored.
func NewWrapperError(kind error, args ...any) error {
	if len(args) == 0 {
		return kind //errtrace:skip
	}

	var msg string
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, kind) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", kind, v) //errtrace:skip
	case string:
		msg = v
		if len(args) > 1 {
			msg = fmt.Sprintf(v, args[1:]...)
		}
	default:
		return kind //errtrace:skip
	}
	return fmt.Errorf("%w: %s", kind, msg) //errtrace:skip
}

// ErrInvalidArgument reports misuse of an API, such as registering a nil parser.
const ErrInvalidArgument Error = "invalid argument"

// NewInvalidArgumentError is [NewWrapperError] with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

// JoinPrefix groups errs under prefix.
// It returns nil for no errors, "prefix: err" for one, and a bulleted list otherwise.
func JoinPrefix(prefix string, errs ...error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s: %w", strings.TrimRight(prefix, ":"), errs[0]) //errtrace:skip
	}
	return &prefixedErrors{prefix: prefix, errs: errs} //errtrace:skip
}

type prefixedErrors struct {
	prefix string
	errs   []error
}

func (e *prefixedErrors) Error() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(e.prefix)
	for _, err := range e.errs {
		if err == nil {
			continue
		}
		sb.WriteString("\n  - ")
		sb.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n    "))
	}
	return sb.String()
}

func (e *prefixedErrors) Unwrap() []error { return e.errs }
