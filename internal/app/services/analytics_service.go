package services

import (
	"context"
	"sort"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/repositories"
	"github.com/aymanebt/tptrack/internal/pkg/cache"
	"github.com/aymanebt/tptrack/internal/pkg/helpers"
)

// KPICacheKey stores the system-wide indicator snapshot; presence writes
// invalidate it
const KPICacheKey = "analytics:kpis"

// statsReader exposes the raw aggregation queries the reports are built from
type statsReader interface {
	GetSessionStats(ctx context.Context, scope models.Scope) ([]repositories.SessionStatRow, error)
	CountPresences(ctx context.Context, scope models.Scope) (present, total int64, err error)
	GetAbsences(ctx context.Context, scope models.Scope) ([]repositories.AbsenceRow, error)
}

// sessionCounter counts sessions in scope
type sessionCounter interface {
	CountInScope(ctx context.Context, scope models.Scope) (int64, error)
}

// AnalyticsService assembles the attendance reports. Rates are computed here
// rather than in SQL so empty denominators are handled in one place.
type AnalyticsService struct {
	stats    statsReader
	sessions sessionCounter
	cache    *cache.Cache
}

// NewAnalyticsService creates a new analytics service. The cache may be nil;
// every read then goes straight to the database.
func NewAnalyticsService(repos *repositories.Repositories, c *cache.Cache) *AnalyticsService {
	return &AnalyticsService{
		stats:    repos.AnalyticsRepository,
		sessions: repos.SessionRepository,
		cache:    c,
	}
}

// GetSessionStats returns one rate row per (day, group, module), oldest
// first. A session with no presence records reports a 0 rate.
func (s *AnalyticsService) GetSessionStats(ctx context.Context, scope models.Scope) ([]dto.SessionStatResponse, error) {
	rows, err := s.stats.GetSessionStats(ctx, scope)
	if err != nil {
		return nil, err
	}

	stats := make([]dto.SessionStatResponse, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, dto.SessionStatResponse{
			Date:    helpers.FormatDate(row.Date),
			Group:   row.Group,
			Module:  row.Module,
			Present: row.Present,
			Total:   row.Total,
			Rate:    helpers.Percentage(row.Present, row.Total),
		})
	}

	return stats, nil
}

// GetKPIs returns the session count and the overall presence rate for the
// scope. The system-wide snapshot is served from cache when available.
func (s *AnalyticsService) GetKPIs(ctx context.Context, scope models.Scope) (*dto.KPIResponse, error) {
	cacheable := scope.All()
	if cacheable {
		var cached dto.KPIResponse
		if s.cache.Get(ctx, KPICacheKey, &cached) {
			return &cached, nil
		}
	}

	totalSessions, err := s.sessions.CountInScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	present, total, err := s.stats.CountPresences(ctx, scope)
	if err != nil {
		return nil, err
	}

	kpis := &dto.KPIResponse{
		TotalSessions: totalSessions,
		AvgRate:       helpers.Percentage(present, total),
	}

	if cacheable {
		s.cache.Set(ctx, KPICacheKey, kpis)
	}

	return kpis, nil
}

// GetAbsenceReport aggregates absences per (student, module) and ranks the
// buckets by descending count. Dates within a bucket stay most recent first;
// equal counts keep the underlying name/module order.
func (s *AnalyticsService) GetAbsenceReport(ctx context.Context, scope models.Scope) ([]dto.AbsenceRecordResponse, error) {
	rows, err := s.stats.GetAbsences(ctx, scope)
	if err != nil {
		return nil, err
	}

	type bucketKey struct {
		cne    string
		module string
	}
	var order []bucketKey
	buckets := make(map[bucketKey]*dto.AbsenceRecordResponse)

	for _, row := range rows {
		key := bucketKey{cne: row.CNE, module: row.Module}
		rec, ok := buckets[key]
		if !ok {
			rec = &dto.AbsenceRecordResponse{
				Name:   row.Name,
				CNE:    row.CNE,
				Group:  row.Group,
				Module: row.Module,
			}
			buckets[key] = rec
			order = append(order, key)
		}
		rec.Count++
		rec.Dates = append(rec.Dates, helpers.FormatDate(row.Date))
	}

	report := make([]dto.AbsenceRecordResponse, 0, len(order))
	for _, key := range order {
		report = append(report, *buckets[key])
	}

	sort.SliceStable(report, func(i, j int) bool {
		return report[i].Count > report[j].Count
	})

	return report, nil
}

// InvalidateKPIs drops the cached indicator snapshot; called after presence
// writes
func (s *AnalyticsService) InvalidateKPIs(ctx context.Context) {
	s.cache.Invalidate(ctx, KPICacheKey)
}
