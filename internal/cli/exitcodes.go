package cli

import (
	"errors"

	"github.com/yaklabco/texcalc/internal/configloader"
	"github.com/yaklabco/texcalc/pkg/fsutil"
	"github.com/yaklabco/texcalc/pkg/region"
)

// Exit codes for texcalc.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a general failure, including empty answers
	// under --strict.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrNoAnswers is returned under --strict when at least one selection
	// or expression produced no answer.
	ErrNoAnswers = errors.New("some expressions produced no answer")

	// ErrUsage marks invalid command-line usage.
	ErrUsage = errors.New("invalid usage")

	// errConfig marks a configuration loading failure.
	errConfig = errors.New("failed to load configuration")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNoAnswers):
		return ExitFailure
	case errors.Is(err, ErrUsage), errors.Is(err, region.ErrInvalidPosition):
		return ExitInvalidUsage
	case errors.Is(err, errConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrModified), errors.Is(err, configloader.ErrConfigExists):
		return ExitIOError
	default:
		return ExitFailure
	}
}
