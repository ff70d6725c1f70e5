package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"caretier/internal/model"
)

// RecommendationCache keeps recent assessments hot so downstream consumers
// re-read recommendations without hitting the primary store.
type RecommendationCache interface {
	Set(ctx context.Context, assessment *model.Assessment) error
	Get(ctx context.Context, id string) (*model.Assessment, error)
	Delete(ctx context.Context, id string) error
}

type recommendationCache struct {
	client *redis.Client
}

func NewRecommendationCache(client *redis.Client) RecommendationCache {
	return &recommendationCache{
		client: client,
	}
}

func (c *recommendationCache) Set(ctx context.Context, assessment *model.Assessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "assessment:"+assessment.ID, data, 30*time.Minute).Err()
}

func (c *recommendationCache) Get(ctx context.Context, id string) (*model.Assessment, error) {
	data, err := c.client.Get(ctx, "assessment:"+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var assessment model.Assessment
	err = json.Unmarshal([]byte(data), &assessment)
	return &assessment, err
}

func (c *recommendationCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "assessment:"+id).Err()
}
