package statistics

import (
	"context"
	"net/http"
	"time"
)

type Statistics struct {
	StatID                uint      `gorm:"primaryKey;column:stat_id" json:"id"`
	StatDate              time.Time `gorm:"column:stat_date;type:date;uniqueIndex" json:"date"`
	ProductiveTimeMinutes int       `gorm:"column:productive_time_minutes" json:"productiveTimeMinutes"`
	TasksCompleted        int       `gorm:"column:tasks_completed" json:"tasksCompleted"`
	NotesCreated          int       `gorm:"column:notes_created" json:"notesCreated"`
	TasksByDifficulty     string    `gorm:"column:tasks_by_difficulty" json:"tasksByDifficulty"`
	NotesByType           string    `gorm:"column:notes_by_type" json:"notesByType"`
}

func (Statistics) TableName() string {
	return "statistics"
}

// DaySummary is one dashboard row for a recent day. DayName is the 3-letter
// English day abbreviation.
type DaySummary struct {
	Date                  string `json:"date"`
	DayName               string `json:"dayName"`
	TasksCompleted        int    `json:"tasksCompleted"`
	NotesCreated          int    `json:"notesCreated"`
	ProductiveTimeMinutes int    `json:"productiveTimeMinutes"`
}

type DashboardResponse struct {
	TodayStats      *Statistics      `json:"todayStats"`
	Last7Days       []DaySummary     `json:"last7Days"`
	DifficultyStats map[string]int64 `json:"difficultyStats"`
	NoteTypeStats   map[string]int64 `json:"noteTypeStats"`
}

type UpsertStatisticsRequest struct {
	Date                  string `json:"date" validate:"required,datetime=2006-01-02"`
	ProductiveTimeMinutes int    `json:"productiveTimeMinutes" validate:"gte=0"`
	TasksCompleted        int    `json:"tasksCompleted" validate:"gte=0"`
	NotesCreated          int    `json:"notesCreated" validate:"gte=0"`
	TasksByDifficulty     string `json:"tasksByDifficulty"`
	NotesByType           string `json:"notesByType"`
}

type Controller interface {
	GetByDate(w http.ResponseWriter, r *http.Request)
	GetRange(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
	CreateStatistics(w http.ResponseWriter, r *http.Request)
	UpdateStatistics(w http.ResponseWriter, r *http.Request)
	DeleteStatistics(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	ComputeForDate(date time.Time) (*Statistics, error)
	Range(startDate, endDate time.Time) ([]Statistics, error)
	Dashboard(ctx context.Context) (*DashboardResponse, error)
	CreateStatistics(s *Statistics) error
	UpdateStatistics(statID uint, s *Statistics) (*Statistics, error)
	DeleteStatistics(statID uint) error
}

type Repo interface {
	CompletedTaskDifficultiesBetween(start, end time.Time) ([]string, error)
	NoteTypesBetween(start, end time.Time) ([]string, error)
	TaskDifficultyCounts() (map[string]int64, error)
	NoteTypeCounts() (map[string]int64, error)
	Upsert(s *Statistics) error
	GetByDateRange(startDate, endDate time.Time) ([]Statistics, error)
	GetByID(statID uint) (*Statistics, error)
	Create(s *Statistics) error
	Update(s *Statistics) error
	Delete(statID uint) error
	CachedDashboard(ctx context.Context) (*DashboardResponse, error)
	CacheDashboard(ctx context.Context, d *DashboardResponse) error
}
