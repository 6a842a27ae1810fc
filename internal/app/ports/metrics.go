package ports

// RoundReport summarizes what one round of planning produced.
type RoundReport struct {
	Round     int
	Day       bool
	Moves     int
	Builds    int
	Holds     int
	Fallbacks int
}

type RoundMetrics interface {
	RecordRound(report RoundReport)
}
