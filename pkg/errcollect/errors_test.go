package errcollect_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/errcollect/pkg/errcollect"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, errcollect.ExitSuccess},
		{"general error", errors.New("something went wrong"), errcollect.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag: --foo"), errcollect.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), errcollect.ExitUsageError},
		{"accepts args", errors.New("accepts at most 1 arg(s), received 2"), errcollect.ExitUsageError},
		{"invalid config", errcollect.ErrInvalidConfig, errcollect.ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("strip pattern: %w", errcollect.ErrInvalidConfig), errcollect.ExitConfigError},
		{"root not found", fmt.Errorf("%w: /nope", errcollect.ErrRootNotFound), errcollect.ExitRootNotFound},
		{"report write", fmt.Errorf("%w: disk full", errcollect.ErrReportWrite), errcollect.ExitReportFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errcollect.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
