package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"menuboard/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	Client  *redis.Client
	PageTTL time.Duration
}

func NewRedisStore(client *redis.Client, pageTTL time.Duration) *RedisStore {
	return &RedisStore{Client: client, PageTTL: pageTTL}
}

func (s *RedisStore) PageKey(restaurantID string) string {
	return "menupage:" + restaurantID
}

func (s *RedisStore) DailyViewsKey(day string) string {
	return "views:daily:" + day
}

func (s *RedisStore) GetPage(ctx context.Context, restaurantID string) (*domain.MenuPage, error) {
	raw, err := s.Client.Get(ctx, s.PageKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var page domain.MenuPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *RedisStore) SetPage(ctx context.Context, restaurantID string, page *domain.MenuPage) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.PageKey(restaurantID), raw, s.PageTTL).Err()
}

func (s *RedisStore) IncrementView(ctx context.Context, restaurantID, day string) error {
	key := s.DailyViewsKey(day)
	if err := s.Client.ZIncrBy(ctx, key, 1, restaurantID).Err(); err != nil {
		return err
	}
	return s.Client.Expire(ctx, key, 30*24*time.Hour).Err()
}

func (s *RedisStore) RestaurantViews(ctx context.Context, restaurantID, day string) (int64, error) {
	score, err := s.Client.ZScore(ctx, s.DailyViewsKey(day), restaurantID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int64(score), nil
}

func (s *RedisStore) TotalViews(ctx context.Context, day string) (int64, error) {
	members, err := s.Client.ZRangeWithScores(ctx, s.DailyViewsKey(day), 0, -1).Result()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, member := range members {
		total += int64(member.Score)
	}
	return total, nil
}
