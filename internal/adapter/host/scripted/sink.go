package scripted

import "github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"

// Action is one submitted order in arrival order.
type Action struct {
	Op        string   `json:"op"`
	CitizenID int      `json:"citizen_id"`
	Dir       game.Dir `json:"dir"`
}

// Log records submitted actions. It implements the action sink port.
type Log struct {
	Actions []Action
}

func (l *Log) Move(id int, d game.Dir) error {
	l.Actions = append(l.Actions, Action{Op: "move", CitizenID: id, Dir: d})
	return nil
}

func (l *Log) Build(id int, d game.Dir) error {
	l.Actions = append(l.Actions, Action{Op: "build", CitizenID: id, Dir: d})
	return nil
}

// DirOf returns the recorded direction for a citizen, or "" if it did not act.
func (l *Log) DirOf(id int) game.Dir {
	for _, a := range l.Actions {
		if a.CitizenID == id {
			return a.Dir
		}
	}
	return ""
}
