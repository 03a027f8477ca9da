package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/fitplan-backend/internal/cfg"
	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/fitplan-backend/pkg/clients"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.PlanConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.PlanConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetPlan возвращает план из кэша. Промах и битая запись дают (nil, nil).
func (c *CacheRepo) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	key := planKey(id)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == r.Nil {
			return nil, nil // cache miss
		}
		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := unmarshalPlan(data)
	if err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		c.drop(key)
		return nil, nil
	}

	if model.ID != id {
		c.logger.Warnf("Cache ID mismatch: key_id: %s, model_id: %s", id, model.ID)
		c.drop(key)
		return nil, nil
	}

	return c.conv.ToEntity(model), nil
}

// SetPlan кэширует план с TTL из конфигурации.
func (c *CacheRepo) SetPlan(ctx context.Context, plan *domain.Plan) error {
	data, err := json.Marshal(c.conv.ToRedisModel(plan))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, planKey(plan.ID), data, c.cfg.PlanTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) DeletePlan(ctx context.Context, id string) error {
	if err := c.client.Client.Del(ctx, planKey(id)).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) drop(key string) {
	if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
		c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

func unmarshalPlan(data []byte) (*converter.PlanRedisModel, error) {
	var model converter.PlanRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// planKey возвращает Redis-ключ плана
func planKey(id string) string {
	return fmt.Sprintf("plan:%s", id)
}
