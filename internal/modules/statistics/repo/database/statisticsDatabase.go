package database

import (
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskmanager/internal/modules/note"
	"taskmanager/internal/modules/statistics"
	"taskmanager/internal/modules/task"
)

type StatisticsDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewStatisticsDatabase(db *gorm.DB, log *slog.Logger) *StatisticsDatabase {
	return &StatisticsDatabase{db: db, log: log}
}

func (r *StatisticsDatabase) CompletedTaskDifficultiesBetween(start, end time.Time) ([]string, error) {
	var difficulties []string
	err := r.db.Model(&task.Task{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", task.StatusCompleted, start, end).
		Pluck("difficulty", &difficulties).Error
	if err != nil {
		r.log.Error("failed to fetch completed task difficulties", "error", err)
		return nil, statistics.ErrInternal
	}
	return difficulties, nil
}

func (r *StatisticsDatabase) NoteTypesBetween(start, end time.Time) ([]string, error) {
	var types []string
	err := r.db.Model(&note.Note{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Pluck("note_type", &types).Error
	if err != nil {
		r.log.Error("failed to fetch note types", "error", err)
		return nil, statistics.ErrInternal
	}
	return types, nil
}

type countRow struct {
	Label string
	Total int64
}

func (r *StatisticsDatabase) TaskDifficultyCounts() (map[string]int64, error) {
	var rows []countRow
	err := r.db.Model(&task.Task{}).
		Select("difficulty AS label, COUNT(*) AS total").
		Group("difficulty").
		Scan(&rows).Error
	if err != nil {
		r.log.Error("failed to aggregate task difficulties", "error", err)
		return nil, statistics.ErrInternal
	}
	return rowsToMap(rows), nil
}

func (r *StatisticsDatabase) NoteTypeCounts() (map[string]int64, error) {
	var rows []countRow
	err := r.db.Model(&note.Note{}).
		Select("note_type AS label, COUNT(*) AS total").
		Group("note_type").
		Scan(&rows).Error
	if err != nil {
		r.log.Error("failed to aggregate note types", "error", err)
		return nil, statistics.ErrInternal
	}
	return rowsToMap(rows), nil
}

// Upsert inserts the snapshot or replaces the existing row for the same date.
func (r *StatisticsDatabase) Upsert(s *statistics.Statistics) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "stat_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"productive_time_minutes", "tasks_completed", "notes_created",
			"tasks_by_difficulty", "notes_by_type",
		}),
	}).Create(s).Error
	if err != nil {
		r.log.Error("failed to upsert statistics snapshot", "error", err)
		return statistics.ErrInternal
	}
	return nil
}

func (r *StatisticsDatabase) GetByDateRange(startDate, endDate time.Time) ([]statistics.Statistics, error) {
	var rows []statistics.Statistics
	err := r.db.
		Where("stat_date >= ? AND stat_date <= ?", startDate, endDate).
		Order("stat_date ASC").
		Find(&rows).Error
	if err != nil {
		r.log.Error("failed to fetch snapshot range", "error", err)
		return nil, statistics.ErrInternal
	}
	return rows, nil
}

func (r *StatisticsDatabase) GetByID(statID uint) (*statistics.Statistics, error) {
	var s statistics.Statistics
	if err := r.db.First(&s, "stat_id = ?", statID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, statistics.ErrStatisticsNotFound
		}
		r.log.Error("failed to fetch snapshot", "error", err, slog.Uint64("statID", uint64(statID)))
		return nil, statistics.ErrInternal
	}
	return &s, nil
}

func (r *StatisticsDatabase) Create(s *statistics.Statistics) error {
	if err := r.db.Create(s).Error; err != nil {
		r.log.Error("failed to insert snapshot", "error", err)
		return statistics.ErrInternal
	}
	return nil
}

func (r *StatisticsDatabase) Update(s *statistics.Statistics) error {
	err := r.db.Model(s).
		Select("StatDate", "ProductiveTimeMinutes", "TasksCompleted", "NotesCreated",
			"TasksByDifficulty", "NotesByType").
		Updates(s).Error
	if err != nil {
		r.log.Error("failed to update snapshot", "error", err, slog.Uint64("statID", uint64(s.StatID)))
		return statistics.ErrInternal
	}
	return nil
}

func (r *StatisticsDatabase) Delete(statID uint) error {
	if err := r.db.Delete(&statistics.Statistics{}, "stat_id = ?", statID).Error; err != nil {
		r.log.Error("failed to delete snapshot", "error", err, slog.Uint64("statID", uint64(statID)))
		return statistics.ErrInternal
	}
	return nil
}

func rowsToMap(rows []countRow) map[string]int64 {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Total
	}
	return counts
}
