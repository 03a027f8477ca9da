package clients

import (
	"context"
	"fmt"

	config "github.com/DRSN-tech/fitplan-backend/internal/cfg"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/qdrant/go-client/qdrant"
)

// clusterField — поле payload, по которому строится индекс для фильтрации профилей по кластеру.
const clusterField = "cluster"

type QdrantClient struct {
	Client *qdrant.Client
	cfg    *config.QdrantCfg
}

func NewQdrantClient(cfg *config.QdrantCfg) (*QdrantClient, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.ApiKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &QdrantClient{Client: client, cfg: cfg}, nil
}

// EnsureCollection создает коллекцию профилей, если ее нет. У существующей коллекции
// проверяется размерность: вектор модели из другой версии признаков не должен в нее попасть.
func EnsureCollection(ctx context.Context, client *QdrantClient) error {
	name := client.cfg.QdrantCollectionName

	exists, err := client.Client.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}

	if exists {
		info, err := client.Client.GetCollectionInfo(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to read collection %s: %w", name, err)
		}

		size := info.GetConfig().GetParams().GetVectorsConfig().GetParams().GetSize()
		if size != client.cfg.VectorSize {
			return fmt.Errorf("%w: collection %s has vectors of size %d, model produces %d",
				e.ErrDimensionMismatch, name, size, client.cfg.VectorSize)
		}
		return nil
	}

	if err := client.Client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     client.cfg.VectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	}); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	if _, err := client.Client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
		CollectionName: name,
		FieldName:      clusterField,
		FieldType:      qdrant.FieldType_FieldTypeInteger.Enum(),
	}); err != nil {
		return fmt.Errorf("failed to index %s payload: %w", clusterField, err)
	}

	return nil
}
