package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFileType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pdf", "pdf"},
		{".docx", "docx"},
		{" PDF ", "pdf"},
		{"", "pdf"},
		{"   ", "pdf"},
		{"averylongextension", "averylonge"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeFileType(tt.in), "input %q", tt.in)
	}
}

func TestMaterializeWritesFile(t *testing.T) {
	m, err := NewTempMaterializer(t.TempDir())
	require.NoError(t, err)

	data := []byte("module content")
	path, err := m.Materialize(data, "module", "txt")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, ".txt"))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "module_"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestMaterializeUniqueNames(t *testing.T) {
	m, err := NewTempMaterializer(t.TempDir())
	require.NoError(t, err)

	first, err := m.Materialize([]byte("a"), "submission", "pdf")
	require.NoError(t, err)
	second, err := m.Materialize([]byte("b"), "submission", "pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
