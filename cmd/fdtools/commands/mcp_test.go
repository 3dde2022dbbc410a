package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMCP_RejectsArguments(t *testing.T) {
	err := HandleMCP([]string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes no arguments")
}

func TestSetupMCPFlags_Usage(t *testing.T) {
	fs := SetupMCPFlags()
	var buf strings.Builder
	fs.SetOutput(&buf)
	fs.Usage()
	assert.Contains(t, buf.String(), "FDTOOLS_CACHE_ENABLED")
	assert.NoError(t, HandleMCP([]string{"-h"}))
}
