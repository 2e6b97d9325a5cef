package service

import (
	"context"
	"time"

	"menuboard/internal/domain"
)

type AnalyticsService struct {
	stats StatsRepository
	views ViewStore
}

func NewAnalyticsService(stats StatsRepository, views ViewStore) *AnalyticsService {
	return &AnalyticsService{stats: stats, views: views}
}

// Overview aggregates the admin dashboard numbers: SQL totals plus the
// per-day view series for the trailing window. Days with no counter yield
// zero rather than an error.
func (s *AnalyticsService) Overview(ctx context.Context, days int) (*domain.Overview, error) {
	if days <= 0 {
		days = 7
	}

	restaurants, err := s.stats.CountProfiles()
	if err != nil {
		return nil, err
	}
	items, err := s.stats.CountMenuItems()
	if err != nil {
		return nil, err
	}

	series := make([]domain.DailyViews, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		count := int64(0)
		if s.views != nil {
			if total, err := s.views.TotalViews(ctx, day); err == nil {
				count = total
			}
		}
		series = append(series, domain.DailyViews{Date: day, Count: count})
	}

	return &domain.Overview{
		TotalRestaurants: restaurants,
		TotalMenuItems:   items,
		Views:            series,
	}, nil
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
