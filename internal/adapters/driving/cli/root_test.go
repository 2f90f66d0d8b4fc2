package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat-labs/docchat-cli/internal/logger"
)

func TestRootCmd_VerboseFlagEnablesLogging(t *testing.T) {
	defer logger.SetVerbose(false)
	defer func() { verbose = false }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--verbose", "version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())

	assert.True(t, logger.IsVerbose())
}

func TestRootCmd_FlagDefaultKeepsResolvedVerbose(t *testing.T) {
	// The composition root resolves verbose from the environment and the
	// config file before commands run; the flag's default must not undo
	// that.
	logger.SetVerbose(true)
	defer logger.SetVerbose(false)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())

	assert.True(t, logger.IsVerbose())
}
