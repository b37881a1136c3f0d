package repo

import (
	"context"
	"time"

	"taskmanager/internal/modules/statistics"
)

type StatsDb interface {
	CompletedTaskDifficultiesBetween(start, end time.Time) ([]string, error)
	NoteTypesBetween(start, end time.Time) ([]string, error)
	TaskDifficultyCounts() (map[string]int64, error)
	NoteTypeCounts() (map[string]int64, error)
	Upsert(s *statistics.Statistics) error
	GetByDateRange(startDate, endDate time.Time) ([]statistics.Statistics, error)
	GetByID(statID uint) (*statistics.Statistics, error)
	Create(s *statistics.Statistics) error
	Update(s *statistics.Statistics) error
	Delete(statID uint) error
}

type StatsCache interface {
	CachedDashboard(ctx context.Context) (*statistics.DashboardResponse, error)
	CacheDashboard(ctx context.Context, d *statistics.DashboardResponse) error
}

type Repo struct {
	db    StatsDb
	cache StatsCache
}

func NewStatisticsRepo(db StatsDb, cache StatsCache) *Repo {
	return &Repo{db: db, cache: cache}
}

func (r *Repo) CompletedTaskDifficultiesBetween(start, end time.Time) ([]string, error) {
	return r.db.CompletedTaskDifficultiesBetween(start, end)
}

func (r *Repo) NoteTypesBetween(start, end time.Time) ([]string, error) {
	return r.db.NoteTypesBetween(start, end)
}

func (r *Repo) TaskDifficultyCounts() (map[string]int64, error) {
	return r.db.TaskDifficultyCounts()
}

func (r *Repo) NoteTypeCounts() (map[string]int64, error) {
	return r.db.NoteTypeCounts()
}

func (r *Repo) Upsert(s *statistics.Statistics) error {
	return r.db.Upsert(s)
}

func (r *Repo) GetByDateRange(startDate, endDate time.Time) ([]statistics.Statistics, error) {
	return r.db.GetByDateRange(startDate, endDate)
}

func (r *Repo) GetByID(statID uint) (*statistics.Statistics, error) {
	return r.db.GetByID(statID)
}

func (r *Repo) Create(s *statistics.Statistics) error {
	return r.db.Create(s)
}

func (r *Repo) Update(s *statistics.Statistics) error {
	return r.db.Update(s)
}

func (r *Repo) Delete(statID uint) error {
	return r.db.Delete(statID)
}

func (r *Repo) CachedDashboard(ctx context.Context) (*statistics.DashboardResponse, error) {
	return r.cache.CachedDashboard(ctx)
}

func (r *Repo) CacheDashboard(ctx context.Context, d *statistics.DashboardResponse) error {
	return r.cache.CacheDashboard(ctx, d)
}
