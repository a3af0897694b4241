package engine

import (
	"time"

	"github.com/ChizhovVadim/chessuci/pkg/score"
	"github.com/ChizhovVadim/chessuci/pkg/timer"
)

// TimeManager decides between iterations whether the next depth is started.
type TimeManager[T score.Value] interface {
	ContinueID(lastEval T, t *timer.Timer, movesMade int) bool
}

type DefaultTimeManager[T score.Value] struct{}

// Budget returns the time planned for the current move.
// The result is false when the side to move is untimed.
func (DefaultTimeManager[T]) Budget(t *timer.Timer, movesMade int) (time.Duration, bool) {
	if !t.HasClock(t.Player()) {
		if t.MoveTime() == 0 {
			return 0, false
		}
		return t.MoveTime(), true
	}
	var remaining, _ = t.RemainingFor(t.Player())
	var movesToGo int
	if t.PeriodicBonus() != 0 && t.MovesToGo() > 0 {
		movesToGo = t.MovesToGo()
	} else if movesMade <= 90 {
		movesToGo = 100 - movesMade
	} else {
		movesToGo = 10
	}
	return remaining / time.Duration(movesToGo), true
}

func (tm DefaultTimeManager[T]) ContinueID(lastEval T, t *timer.Timer, movesMade int) bool {
	if !t.Started() {
		return true
	}
	var budget, ok = tm.Budget(t, movesMade)
	if !ok {
		return true
	}
	return t.Elapsed() <= budget
}
