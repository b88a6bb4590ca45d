package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultIsRV64(t *testing.T) {
	prof := Default()
	assert.Equal(t, "rv64gc", prof.Name)
	assert.Equal(t, 64, prof.XLEN)
	assert.Equal(t, "goarch", prof.Disassembler)
	require.NoError(t, prof.Validate())
}

func TestLoadProfile(t *testing.T) {
	prof, err := LoadProfile(filepath.Join("profiles", "rv64gc.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), prof)

	prof, err = LoadProfile(filepath.Join("profiles", "rv32-objdump.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "rv32imac", prof.Name)
	assert.Equal(t, 32, prof.XLEN)
	assert.Equal(t, "objdump", prof.Disassembler)
	assert.True(t, prof.Lenient)
}

func TestLoadProfileKeepsDefaults(t *testing.T) {
	prof, err := LoadProfile(writeProfile(t, "name: custom\nlenient: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "custom", prof.Name)
	assert.Equal(t, 64, prof.XLEN)
	assert.Equal(t, "goarch", prof.Disassembler)
	assert.Equal(t, "gnu", prof.Syntax)
	assert.True(t, prof.Lenient)
}

func TestLoadProfileAcceptsJSON(t *testing.T) {
	prof, err := LoadProfile(writeProfile(t, `{"name": "json", "syntax": "plan9"}`))
	require.NoError(t, err)
	assert.Equal(t, "json", prof.Name)
	assert.Equal(t, "plan9", prof.Syntax)
}

func TestLoadProfileErrors(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open profile")

	_, err = LoadProfile(writeProfile(t, "xlen: [64"))
	assert.ErrorContains(t, err, "failed to parse profile")

	tests := map[string]string{
		"unknown disassembler": "disassembler: capstone\n",
		"unknown syntax":       "syntax: intel\n",
		"unsupported xlen":     "xlen: 128\n",
		"goarch on rv32":       "xlen: 32\n",
		"objdump plan9":        "disassembler: objdump\nsyntax: plan9\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadProfile(writeProfile(t, content))
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}
