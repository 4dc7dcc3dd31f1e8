// Package errorx implements coded errors. Every business error carries an
// integer code registered with an HTTP status and a user-facing message, so
// handlers can translate failures into consistent API responses.
package errorx

import (
	"fmt"
	"net/http"
	"sync"
)

// Coder describes an error code: its integer value, the HTTP status it maps
// to, the external (user-safe) message, and an optional reference document.
type Coder interface {
	Code() int
	HTTPStatus() int
	String() string
	Reference() string
}

type defaultCoder struct {
	code       int
	httpStatus int
	message    string
	reference  string
}

func (c defaultCoder) Code() int          { return c.code }
func (c defaultCoder) HTTPStatus() int    { return c.httpStatus }
func (c defaultCoder) String() string     { return c.message }
func (c defaultCoder) Reference() string  { return c.reference }

// NewCoder builds a Coder from its parts.
func NewCoder(code, httpStatus int, message, reference string) Coder {
	return defaultCoder{code: code, httpStatus: httpStatus, message: message, reference: reference}
}

var (
	codesMu sync.RWMutex
	codes   = map[int]Coder{}
)

// unknownCoder is returned by ParseCoder for errors that carry no code.
var unknownCoder = defaultCoder{
	code:       1,
	httpStatus: http.StatusInternalServerError,
	message:    "An internal server error occurred",
}

// Register registers a Coder, overwriting any existing registration.
func Register(coder Coder) {
	if coder.Code() == unknownCoder.code {
		panic("code '1' is reserved as the unknown error code")
	}
	codesMu.Lock()
	defer codesMu.Unlock()
	codes[coder.Code()] = coder
}

// MustRegister registers a Coder and panics if the code is already taken.
func MustRegister(coder Coder) {
	if coder.Code() == unknownCoder.code {
		panic("code '1' is reserved as the unknown error code")
	}
	codesMu.Lock()
	defer codesMu.Unlock()
	if _, ok := codes[coder.Code()]; ok {
		panic(fmt.Sprintf("code %d is already registered", coder.Code()))
	}
	codes[coder.Code()] = coder
}

type withCode struct {
	err   error
	code  int
	cause error
}

func (w *withCode) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%v: %v", w.err, w.cause)
	}
	return w.err.Error()
}

func (w *withCode) Unwrap() error { return w.cause }

// WithCode creates a new coded error.
func WithCode(code int, format string, args ...interface{}) error {
	return &withCode{
		err:  fmt.Errorf(format, args...),
		code: code,
	}
}

// WrapC wraps an existing error with a code and a message.
func WrapC(err error, code int, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &withCode{
		err:   fmt.Errorf(format, args...),
		code:  code,
		cause: err,
	}
}

// ParseCoder resolves an error to its registered Coder. Errors without a code
// or with an unregistered code resolve to the unknown coder (code 1, HTTP 500).
func ParseCoder(err error) Coder {
	if err == nil {
		return nil
	}
	if v, ok := err.(*withCode); ok {
		codesMu.RLock()
		coder, found := codes[v.code]
		codesMu.RUnlock()
		if found {
			return coder
		}
	}
	return unknownCoder
}

// IsCode reports whether the error (or any error in its chain) carries code.
func IsCode(err error, code int) bool {
	for err != nil {
		if v, ok := err.(*withCode); ok && v.code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
