package game

// Calendar answers whether a given round falls in the day or the night part
// of the cycle. Matches start at day; rounds count from zero.
type Calendar struct {
	DayRounds   int `json:"day_rounds"`
	NightRounds int `json:"night_rounds"`
}

func DefaultCalendar() Calendar {
	return Calendar{DayRounds: 40, NightRounds: 40}
}

func (c Calendar) IsDay(round int) bool {
	day := c.DayRounds
	night := c.NightRounds
	if day <= 0 {
		day = 1
	}
	if night <= 0 {
		night = 1
	}
	if round < 0 {
		round = 0
	}
	return round%(day+night) < day
}

func (c Calendar) IsNight(round int) bool {
	return !c.IsDay(round)
}
