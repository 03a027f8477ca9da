package minio

import (
	"context"
	"io"
	"os"

	"github.com/DRSN-tech/fitplan-backend/internal/cfg"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

const codeNoSuchKey = "NoSuchKey"

// ArtifactRepo читает артефакты модели и каталог упражнений из бакета MinIO.
type ArtifactRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewArtifactRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ArtifactRepo {
	return &ArtifactRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Get возвращает содержимое объекта. Отсутствующий объект оборачивает os.ErrNotExist.
func (a *ArtifactRepo) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := a.mc.GetObject(ctx, a.cfg.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapNotFound(err))
	}
	defer obj.Close()

	if _, err := obj.Stat(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), mapNotFound(err))
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

func mapNotFound(err error) error {
	if minio.ToErrorResponse(err).Code == codeNoSuchKey {
		return os.ErrNotExist
	}
	return err
}
