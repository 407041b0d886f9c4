package aielib

import (
	"fmt"
	"os"
	"strconv"
)

// Status is the two-valued result code shared by every fallible operation.
type Status uint32

const (
	StatusSuccess Status = 0
	StatusFailure Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return fmt.Sprintf("status(%d)", uint32(s))
	}
}

// AIEError wraps a driver status code.
type AIEError struct {
	Code    Status
	message string // Optional custom message for specific errors
}

func (e AIEError) Error() string {
	if e.message != "" {
		if isProductionEnv() {
			return e.sanitizedError()
		}
		return e.message
	}
	return e.sanitizedError()
}

// sanitizedError provides minimal error information for production
func (e AIEError) sanitizedError() string {
	switch e.Code {
	case StatusSuccess:
		return "aie: success"
	case StatusFailure:
		return "aie: failure"
	default:
		return "aie: driver error"
	}
}

// Is reports whether target carries the same status and message. It lets
// errors.Is match sentinels through both the value and the pointer form.
func (e AIEError) Is(target error) bool {
	switch t := target.(type) {
	case AIEError:
		return e.Code == t.Code && e.message == t.message
	case *AIEError:
		return t != nil && e.Code == t.Code && e.message == t.message
	}
	return false
}

// isProductionEnv checks if we're running in production environment
func isProductionEnv() bool {
	env := os.Getenv("AIE_ENV")
	if env == "production" || env == "prod" {
		return true
	}

	if debug := os.Getenv("AIE_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil && !val {
			return true
		}
	}

	return false
}

// statusErr translates a backend status code into an error.
func statusErr(code Status) error {
	if code == StatusSuccess {
		return nil
	}
	return AIEError{Code: code}
}

// usleepErr translates the usleep convention (0 on success, -1 on error).
func usleepErr(ret int) error {
	if ret == 0 {
		return nil
	}
	return ErrSleepFailed
}

// StatusOf collapses err into the two-valued result convention.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	return StatusFailure
}

// Common specific errors for API consumers
var (
	ErrLoadUnsupported = &AIEError{Code: StatusFailure, message: "aie: elf loading not supported on this target"}
	ErrLoadFailed      = &AIEError{Code: StatusFailure, message: "aie: failed to load elf"}
	ErrSleepFailed     = &AIEError{Code: StatusFailure, message: "aie: sleep failed"}
	ErrTileInitFailed  = &AIEError{Code: StatusFailure, message: "aie: tile initialization failed"}
	ErrNoDevice        = &AIEError{Code: StatusFailure, message: "aie: device not initialized"}
	ErrNotSupported    = &AIEError{Code: StatusFailure, message: "aie: not supported on this platform"}
)
