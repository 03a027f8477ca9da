package ml_model

import (
	"context"
	"os"
	"path/filepath"

	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// FileSource читает артефакты с локального диска. Ключ — путь к файлу,
// относительные пути разрешаются от baseDir.
type FileSource struct {
	baseDir string
}

func NewFileSource(baseDir string) *FileSource {
	return &FileSource{baseDir: baseDir}
}

func (f *FileSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	path := key
	if !filepath.IsAbs(path) && f.baseDir != "" {
		path = filepath.Join(f.baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}
