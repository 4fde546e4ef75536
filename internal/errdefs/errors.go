// Package errdefs distinguishes contract violations — programmer
// errors such as a wildcard sentinel passed where a real term ID is
// required, or a malformed config file — from the logical, non-error
// results (Duplicate, Full, Violation, ...) that the graph, registry,
// and validator return as typed values instead of raising an error.
package errdefs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind names a class of contract violation.
type Kind string

const (
	// KindWildcardID: caller tried to store the wildcard sentinel as a
	// real triple field.
	KindWildcardID Kind = "wildcard_id"
	// KindUnknownShape: add_constraint referenced an undefined shape.
	KindUnknownShape Kind = "unknown_shape"
	// KindDuplicateShapeID: define_shape reused an existing shape ID.
	KindDuplicateShapeID Kind = "duplicate_shape_id"
	// KindNilBuffer: a caller-supplied output slice was nil where
	// results were expected to be written.
	KindNilBuffer Kind = "nil_buffer"
	// KindCapacity: a positive capacity/bound was required but a zero
	// or negative value was supplied at construction time.
	KindCapacity Kind = "invalid_capacity"
	// KindIO: a configuration file or watch could not be read.
	KindIO Kind = "io"
	// KindInvalidArgument: a generic malformed-input condition, e.g. a
	// configuration file that failed to parse.
	KindInvalidArgument Kind = "invalid_argument"
)

// InvalidArgument is the contract-violation error. Contains,
// find_pattern and validate never return it; they surface logical
// results instead. It is returned from construction, registry-mutation
// and configuration-loading entry points, and from insert only when a
// field equals the wildcard sentinel, before any work is done, so the
// stack capture cost pkg/errors.WithStack incurs stays off the
// successful path.
type InvalidArgument struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *InvalidArgument) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid argument (%s): %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("invalid argument (%s): %s", e.Kind, e.Message)
}

func (e *InvalidArgument) Unwrap() error { return e.cause }

// Is lets errors.Is match on Kind alone, e.g. errors.Is(err, errdefs.KindUnknownShape).
func (e *InvalidArgument) Is(target error) bool {
	t, ok := target.(*InvalidArgument)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// New builds an InvalidArgument, capturing a stack trace via pkg/errors
// so the rare contract-violation path is debuggable in production logs.
func New(kind Kind, message string) error {
	return errors.WithStack(&InvalidArgument{Kind: kind, Message: message})
}

// Wrap attaches kind/message context to an underlying cause.
func Wrap(cause error, kind Kind, message string) error {
	return errors.WithStack(&InvalidArgument{Kind: kind, Message: message, cause: cause})
}

// KindOf extracts the Kind from err if it is (or wraps) an
// InvalidArgument, returning ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var ia *InvalidArgument
	if errors.As(err, &ia) {
		return ia.Kind, true
	}
	return "", false
}
