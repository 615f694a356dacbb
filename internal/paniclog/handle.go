// Package paniclog turns panics into errors,
// logging the panic value and stack trace along the way.
package paniclog

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/Zamzurizmn/PROJECT-IF112/internal/log"
)

// Handle logs a recovered panic value with the current stack
// and returns it as an error.
// Returns nil if pval is nil.
func Handle(pval any, logger *log.Logger) error {
	if pval == nil {
		return nil
	}

	logger.Errorf("panic: %v\n%s", pval, debug.Stack())

	switch pval := pval.(type) {
	case string:
		return errors.New(pval)
	case error:
		return pval
	default:
		return fmt.Errorf("panic: %v", pval)
	}
}

// Recover recovers a panic and stores it into the given error pointer.
// It must be called directly with defer.
//
//	defer paniclog.Recover(&err, logger)
func Recover(err *error, logger *log.Logger) {
	if pval := recover(); pval != nil {
		*err = Handle(pval, logger)
	}
}
