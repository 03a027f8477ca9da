package qdrant

import (
	"context"

	"github.com/DRSN-tech/fitplan-backend/internal/cfg"
	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/qdrant/go-client/qdrant"
)

const (
	payloadUserID  = "user_id"
	payloadCluster = "cluster"
)

// ProfileRepo хранит стандартизированные векторы профилей в Qdrant.
type ProfileRepo struct {
	client *qdrant.Client
	cfg    *cfg.QdrantCfg
}

func NewProfileRepo(client *qdrant.Client, cfg *cfg.QdrantCfg) *ProfileRepo {
	return &ProfileRepo{
		client: client,
		cfg:    cfg,
	}
}

// Upsert сохраняет вектор профиля под идентификатором плана.
func (q *ProfileRepo) Upsert(ctx context.Context, point *domain.ProfilePoint) error {
	if uint64(len(point.Vector)) != q.cfg.VectorSize {
		return e.Wrap(whereami.WhereAmI(), e.ErrDimensionMismatch)
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Points: []*qdrant.PointStruct{{
			Id:      qdrant.NewIDUUID(point.PlanID),
			Vectors: qdrant.NewVectors(point.Vector...),
			Payload: payloadFor(point),
		}},
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// SearchSimilar ищет ближайшие по косинусной мере профили, исключая сам план.
func (q *ProfileRepo) SearchSimilar(ctx context.Context, vector []float32, limit int, excludePlanID string) ([]domain.SimilarProfile, error) {
	req := &qdrant.QueryPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	}
	if excludePlanID != "" {
		req.Filter = &qdrant.Filter{
			MustNot: []*qdrant.Condition{qdrant.NewHasID(qdrant.NewIDUUID(excludePlanID))},
		}
	}

	points, err := q.client.Query(ctx, req)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return toSimilarProfiles(points), nil
}

func (q *ProfileRepo) Delete(ctx context.Context, planID string) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Points:         qdrant.NewPointsSelector(qdrant.NewIDUUID(planID)),
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func payloadFor(point *domain.ProfilePoint) map[string]*qdrant.Value {
	return qdrant.NewValueMap(map[string]any{
		payloadUserID:  point.UserID,
		payloadCluster: point.Cluster,
	})
}

func toSimilarProfiles(points []*qdrant.ScoredPoint) []domain.SimilarProfile {
	result := make([]domain.SimilarProfile, 0, len(points))
	for _, p := range points {
		result = append(result, domain.SimilarProfile{
			PlanID:  p.GetId().GetUuid(),
			Cluster: int(p.GetPayload()[payloadCluster].GetIntegerValue()),
			Score:   p.GetScore(),
		})
	}
	return result
}
