package ports

import (
	"context"
	"time"
)

// MatchRecord is the outcome of one arena game.
type MatchRecord struct {
	Seed       int64
	Player     string
	Opponent   string
	Mode       string
	Won        bool
	Output     string
	FinishedAt time.Time
}

type MatchRepository interface {
	SaveMatch(ctx context.Context, record MatchRecord) error
	ListMatches(ctx context.Context, player string, limit int) ([]MatchRecord, error)
}
