package cli

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/ariel-frischer/claude-clear-history/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":               {err: nil, want: ExitSuccess},
		"argument":          {err: apperrors.UnexpectedArguments("bad", "x"), want: ExitInvalidArguments},
		"configuration":     {err: apperrors.NewConfigError("bad"), want: ExitValidationFailed},
		"prerequisite":      {err: apperrors.NewPrerequisiteError("missing"), want: ExitValidationFailed},
		"runtime":           {err: apperrors.NewRuntimeError("boom"), want: ExitRuntimeFailure},
		"plain error":       {err: errors.New("boom"), want: ExitRuntimeFailure},
		"wrapped CLI error": {err: fmt.Errorf("outer: %w", apperrors.UnexpectedArguments("bad", "x")), want: ExitInvalidArguments},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
