package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		debug       bool
		wantDebug   bool
		wantEnabled bool
	}{
		"disabled is a no-op": {debug: false, wantDebug: false, wantEnabled: false},
		"debug enabled":       {debug: true, wantDebug: true, wantEnabled: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			logger, err := New(tt.debug)

			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Equal(t, tt.wantDebug, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.wantEnabled, logger.Core().Enabled(zapcore.ErrorLevel))
		})
	}
}
