package main

import "github.com/pkg/errors"

// usageError marks errors caused by invalid invocation.
type usageError struct {
	error
}

func newUsageError(format string, args ...interface{}) error {
	return usageError{errors.Errorf(format, args...)}
}

func isUsageError(err error) bool {
	var ue usageError
	return errors.As(err, &ue)
}
