package gormrepo

import (
	"context"
	"time"

	"github.com/p-rivero/EDA-ThePurge2020/internal/app/ports"

	"gorm.io/gorm"
)

type matchRow struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Seed       int64  `gorm:"index"`
	Player     string `gorm:"index;size:64"`
	Opponent   string `gorm:"size:64"`
	Mode       string `gorm:"size:32"`
	Won        bool
	Output     string `gorm:"type:text"`
	FinishedAt time.Time
}

func (matchRow) TableName() string { return "matches" }

// MatchRepo persists arena game outcomes so win rates can be compared
// across tuning changes.
type MatchRepo struct {
	db *gorm.DB
}

func NewMatchRepo(db *gorm.DB) MatchRepo {
	return MatchRepo{db: db}
}

func (r MatchRepo) Migrate() error {
	return r.db.AutoMigrate(&matchRow{})
}

func (r MatchRepo) SaveMatch(ctx context.Context, record ports.MatchRecord) error {
	row := matchRow{
		Seed:       record.Seed,
		Player:     record.Player,
		Opponent:   record.Opponent,
		Mode:       record.Mode,
		Won:        record.Won,
		Output:     record.Output,
		FinishedAt: record.FinishedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r MatchRepo) ListMatches(ctx context.Context, player string, limit int) ([]ports.MatchRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []matchRow
	err := r.db.WithContext(ctx).
		Where("player = ?", player).
		Order("finished_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]ports.MatchRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, ports.MatchRecord{
			Seed:       m.Seed,
			Player:     m.Player,
			Opponent:   m.Opponent,
			Mode:       m.Mode,
			Won:        m.Won,
			Output:     m.Output,
			FinishedAt: m.FinishedAt,
		})
	}
	return out, nil
}
