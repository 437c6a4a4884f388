package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Manu343726/ocho86/pkg/hw/i8086/listing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 0xD9}, 0o644))

	program, err := LoadBinary(path)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0xD9}, program)
}

func TestLoadBinaryEmptyFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := LoadBinary(path)

	assert.ErrorContains(t, err, "nothing to read")
}

func TestLoadBinaryMissingFileFails(t *testing.T) {
	_, err := LoadBinary(filepath.Join(t.TempDir(), "does-not-exist"))

	assert.Error(t, err)
}

func TestWriteListingRoundTrip(t *testing.T) {
	l, err := listing.Disassemble([]byte{0x89, 0xD9, 0xB1, 0x0C})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "program.asm")
	require.NoError(t, WriteListing(path, l))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bits 16\n\nmov cx, bx\nmov cl, 12\n", string(written))
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "program.asm", DefaultOutputPath("program", ".asm"))
	assert.Equal(t, "program.asm", DefaultOutputPath("program", ""))
	assert.Equal(t, "program.s", DefaultOutputPath("program", ".s"))
}
