package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of the workspace core so callers can tell
// "never configured" apart from "configured but corrupted".
type ErrorKind string

const (
	KindNoConfigDirectory     ErrorKind = "NoConfigDirectory"
	KindNotConfigured         ErrorKind = "NotConfigured"
	KindMalformedConfig       ErrorKind = "MalformedConfig"
	KindNoWorkspaceConfigured ErrorKind = "NoWorkspaceConfigured"
	KindIndexReadFailed       ErrorKind = "IndexReadFailed"
	KindIndexMalformed        ErrorKind = "IndexMalformed"
	KindIndexWriteFailed      ErrorKind = "IndexWriteFailed"
	KindNoteCreateFailed      ErrorKind = "NoteCreateFailed"
	KindNoteReadFailed        ErrorKind = "NoteReadFailed"
	KindNoteNotValidText      ErrorKind = "NoteNotValidText"
	KindNoteSaveFailed        ErrorKind = "NoteSaveFailed"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrNoConfigDirectory     = &Error{Kind: KindNoConfigDirectory}
	ErrNotConfigured         = &Error{Kind: KindNotConfigured}
	ErrMalformedConfig       = &Error{Kind: KindMalformedConfig}
	ErrNoWorkspaceConfigured = &Error{Kind: KindNoWorkspaceConfigured}
	ErrIndexReadFailed       = &Error{Kind: KindIndexReadFailed}
	ErrIndexMalformed        = &Error{Kind: KindIndexMalformed}
	ErrIndexWriteFailed      = &Error{Kind: KindIndexWriteFailed}
	ErrNoteCreateFailed      = &Error{Kind: KindNoteCreateFailed}
	ErrNoteReadFailed        = &Error{Kind: KindNoteReadFailed}
	ErrNoteNotValidText      = &Error{Kind: KindNoteNotValidText}
	ErrNoteSaveFailed        = &Error{Kind: KindNoteSaveFailed}
)

// Error is a tagged failure carrying the operation and path involved
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

// NewError builds an *Error. err may be nil.
func NewError(kind ErrorKind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
