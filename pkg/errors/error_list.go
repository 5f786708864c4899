package errors

import (
	"strings"
)

// ErrorList collects failures that must not stop sibling operations.
type ErrorList []error

func (e *ErrorList) AddErrors(errs ...error) {
	for _, err := range errs {
		if err != nil {
			*e = append(*e, err)
		}
	}
}

func (e ErrorList) IsEmpty() bool {
	return len(e) == 0
}

func (e ErrorList) ToErrorSlice() []error {
	if e.IsEmpty() {
		return nil
	}
	return []error(e)
}

func (e ErrorList) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AsError returns nil for an empty list so callers can return it directly.
func (e ErrorList) AsError() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}
