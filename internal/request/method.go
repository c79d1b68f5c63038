package request

import (
	"errors"
	"fmt"
)

// Method is one of the nine HTTP verbs the listener understands.
type Method uint8

const (
	MethodGet Method = iota + 1
	MethodDelete
	MethodPost
	MethodPut
	MethodHead
	MethodConnect
	MethodOptions
	MethodTrace
	MethodPatch
)

var ErrUnknownMethod = errors.New("unknown HTTP method")

// UnknownMethodError carries the rejected token verbatim.
type UnknownMethodError struct {
	Token string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method: %q", e.Token)
}

func (e *UnknownMethodError) Is(target error) bool {
	return target == ErrUnknownMethod
}

var methodNames = [...]string{
	MethodGet:     "GET",
	MethodDelete:  "DELETE",
	MethodPost:    "POST",
	MethodPut:     "PUT",
	MethodHead:    "HEAD",
	MethodConnect: "CONNECT",
	MethodOptions: "OPTIONS",
	MethodTrace:   "TRACE",
	MethodPatch:   "PATCH",
}

// ParseMethod converts an already tokenized verb into a Method.
// Matching is exact and case-sensitive.
func ParseMethod(token string) (Method, error) {
	switch token {
	case "GET":
		return MethodGet, nil
	case "DELETE":
		return MethodDelete, nil
	case "POST":
		return MethodPost, nil
	case "PUT":
		return MethodPut, nil
	case "HEAD":
		return MethodHead, nil
	case "CONNECT":
		return MethodConnect, nil
	case "OPTIONS":
		return MethodOptions, nil
	case "TRACE":
		return MethodTrace, nil
	case "PATCH":
		return MethodPatch, nil
	default:
		return 0, &UnknownMethodError{Token: token}
	}
}

// Methods returns every valid method in declaration order.
func Methods() []Method {
	return []Method{
		MethodGet, MethodDelete, MethodPost, MethodPut, MethodHead,
		MethodConnect, MethodOptions, MethodTrace, MethodPatch,
	}
}

func (m Method) Valid() bool {
	return m >= MethodGet && m <= MethodPatch
}

func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
	return methodNames[m]
}
