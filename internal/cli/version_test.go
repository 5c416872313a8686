package cli

import (
	"runtime"
	"testing"

	"github.com/ariel-frischer/claude-clear-history/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	// Modifies build.Version, cannot run in parallel
	orig := build.Version
	build.Version = "v1.2.3"
	defer func() { build.Version = orig }()

	tests := map[string]struct {
		args []string
		want []string
	}{
		"plain": {
			args: []string{"version", "--plain"},
			want: []string{"claude-clear-history v1.2.3\n", "go: " + runtime.Version()},
		},
		"pretty": {
			args: []string{"version"},
			want: []string{"claude-clear-history", "v1.2.3", "Platform"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolateHome(t)

			res := runCLI(t, tt.args...)

			require.NoError(t, res.err)
			for _, w := range tt.want {
				assert.Contains(t, res.stdout, w)
			}
		})
	}
}
