package filestorage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/onur/coursespace/internal/pkg/logger"
)

// TempMaterializer turns stored blobs back into files on disk so an external
// viewer can open them. The file-type tag recorded alongside the blob only
// selects the filename extension; no content inspection happens here.
type TempMaterializer struct {
	baseDir string
}

// NewTempMaterializer creates a materializer rooted at baseDir. An empty
// baseDir falls back to the system temp directory.
func NewTempMaterializer(baseDir string) (*TempMaterializer, error) {
	if baseDir == "" {
		baseDir = filepath.Join(os.TempDir(), "coursespace")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		logger.Error().Err(err).Str("path", baseDir).Msg("Failed to create temp file directory")
		return nil, fmt.Errorf("failed to create temp file directory %s: %w", baseDir, err)
	}
	return &TempMaterializer{baseDir: baseDir}, nil
}

// Materialize writes data to a collision-free file named after prefix and the
// file-type tag, returning the full path. Tags are short extension hints
// ("pdf", "docx"); a missing tag defaults to pdf like the desktop viewer did.
func (m *TempMaterializer) Materialize(data []byte, prefix, fileType string) (string, error) {
	ext := NormalizeFileType(fileType)
	name := fmt.Sprintf("%s_%s.%s", prefix, uuid.New().String(), ext)
	path := filepath.Join(m.baseDir, name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to write temp file")
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return path, nil
}

// NormalizeFileType sanitizes a stored file-type tag into a usable filename
// extension. Tags are capped at 10 characters in the schema but may be empty
// or carry a stray dot from older clients.
func NormalizeFileType(fileType string) string {
	ext := strings.TrimPrefix(strings.TrimSpace(fileType), ".")
	ext = strings.ToLower(ext)
	if ext == "" {
		return "pdf"
	}
	if len(ext) > 10 {
		ext = ext[:10]
	}
	return ext
}
