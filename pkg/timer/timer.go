// Package timer keeps the chess clocks of a game.
package timer

import (
	"time"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

type playerTimer struct {
	time      time.Duration
	increment time.Duration
}

func (pt *playerTimer) remaining(start time.Time, playing bool) time.Duration {
	if !playing {
		return pt.time
	}
	return remainingOrZero(start, pt.time)
}

func remainingOrZero(start time.Time, d time.Duration) time.Duration {
	if start.IsZero() {
		return d
	}
	var elapsed = time.Since(start)
	if elapsed > d {
		return 0
	}
	return d - elapsed
}

// Timer holds the clocks of both players. A player without a clock is untimed.
type Timer struct {
	players        [2]*playerTimer
	moveTime       time.Duration
	movesToGo      int
	startMovesToGo int
	periodicBonus  time.Duration
	player         common.Color
	start          time.Time
}

type Config struct {
	WhiteTime      *time.Duration
	WhiteIncrement time.Duration
	BlackTime      *time.Duration
	BlackIncrement time.Duration
	MoveTime       time.Duration
	MovesToGo      int
	StartMovesToGo int
	PeriodicBonus  time.Duration
	Player         common.Color
	Start          time.Time
}

func NewFromDurations(config Config) *Timer {
	var t = &Timer{
		moveTime:       config.MoveTime,
		movesToGo:      config.MovesToGo,
		startMovesToGo: config.StartMovesToGo,
		periodicBonus:  config.PeriodicBonus,
		player:         config.Player,
		start:          config.Start,
	}
	if config.WhiteTime != nil {
		t.players[common.White] = &playerTimer{time: *config.WhiteTime, increment: config.WhiteIncrement}
	}
	if config.BlackTime != nil {
		t.players[common.Black] = &playerTimer{time: *config.BlackTime, increment: config.BlackIncrement}
	}
	return t
}

func NewWithoutIncrement(d time.Duration) *Timer {
	return NewWithIncrement(d, 0)
}

func NewWithIncrement(d, inc time.Duration) *Timer {
	return NewFromDurations(Config{
		WhiteTime:      &d,
		WhiteIncrement: inc,
		BlackTime:      &d,
		BlackIncrement: inc,
	})
}

func NewStaticMoveTime(d time.Duration) *Timer {
	return NewFromDurations(Config{MoveTime: d})
}

// NewFromLimits builds a started timer from the parameters of the "go" command.
// A clock given as zero or negative exists with no time left.
// When moves to go are given, the side's current time is granted again
// every time the period ends.
func NewFromLimits(limits common.LimitsType, player common.Color) *Timer {
	var config = Config{
		WhiteIncrement: common.Milliseconds(limits.WhiteIncrement),
		BlackIncrement: common.Milliseconds(limits.BlackIncrement),
		MoveTime:       common.Milliseconds(limits.MoveTime),
		MovesToGo:      limits.MovesToGo,
		StartMovesToGo: limits.MovesToGo,
		Player:         player,
		Start:          time.Now(),
	}
	if limits.HasWhiteTime || limits.WhiteTime != 0 {
		var d = common.Milliseconds(common.Max(limits.WhiteTime, 0))
		config.WhiteTime = &d
	}
	if limits.HasBlackTime || limits.BlackTime != 0 {
		var d = common.Milliseconds(common.Max(limits.BlackTime, 0))
		config.BlackTime = &d
	}
	if limits.MovesToGo > 0 {
		if player == common.White {
			config.PeriodicBonus = common.Milliseconds(common.Max(limits.WhiteTime, 0))
		} else {
			config.PeriodicBonus = common.Milliseconds(common.Max(limits.BlackTime, 0))
		}
	}
	return NewFromDurations(config)
}

// UpdateFromLimits replaces the clocks but keeps the player, the start and the bonus.
func (t *Timer) UpdateFromLimits(limits common.LimitsType) {
	var other = NewFromLimits(limits, t.player)
	t.players = other.players
	t.moveTime = other.moveTime
	t.movesToGo = other.movesToGo
}

// Limits converts the timer back to the parameters of the "go" command.
func (t *Timer) Limits() common.LimitsType {
	var result common.LimitsType
	if white := t.players[common.White]; white != nil {
		result.HasWhiteTime = true
		result.WhiteTime = int(white.remaining(t.start, t.player == common.White).Milliseconds())
		result.WhiteIncrement = int(white.increment.Milliseconds())
	}
	if black := t.players[common.Black]; black != nil {
		result.HasBlackTime = true
		result.BlackTime = int(black.remaining(t.start, t.player == common.Black).Milliseconds())
		result.BlackIncrement = int(black.increment.Milliseconds())
	}
	result.MoveTime = int(t.moveTime.Milliseconds())
	result.MovesToGo = t.movesToGo
	if t.players[t.player] == nil && t.moveTime == 0 {
		result.Infinite = true
	}
	return result
}

func (t *Timer) RemainingFor(player common.Color) (time.Duration, bool) {
	if pt := t.players[player]; pt != nil {
		return pt.remaining(t.start, t.player == player), true
	}
	if t.moveTime != 0 {
		if t.player == player {
			return remainingOrZero(t.start, t.moveTime), true
		}
		return t.moveTime, true
	}
	return 0, false
}

// MadeMove settles the clock of the side to move and passes the move to the opponent.
// Both clocks receive the periodic bonus when a period of moves ends.
func (t *Timer) MadeMove() {
	var bonus time.Duration
	if t.player == common.Black && t.movesToGo > 0 {
		t.movesToGo--
		if t.movesToGo == 0 {
			t.movesToGo = t.startMovesToGo
			bonus = t.periodicBonus
			if white := t.players[common.White]; white != nil {
				white.time += bonus
			}
		}
	}
	if pt := t.players[t.player]; pt != nil {
		pt.time = pt.remaining(t.start, true) + pt.increment + bonus
	}
	t.player = t.player.Other()
	t.Start()
}

func (t *Timer) Start() {
	t.start = time.Now()
}

func (t *Timer) Started() bool {
	return !t.start.IsZero()
}

func (t *Timer) Elapsed() time.Duration {
	if t.start.IsZero() {
		return 0
	}
	return time.Since(t.start)
}

func (t *Timer) Player() common.Color {
	return t.player
}

func (t *Timer) MoveTime() time.Duration {
	return t.moveTime
}

func (t *Timer) MovesToGo() int {
	return t.movesToGo
}

func (t *Timer) PeriodicBonus() time.Duration {
	return t.periodicBonus
}

func (t *Timer) SetPeriodicBonus(d time.Duration) {
	t.periodicBonus = d
}

func (t *Timer) HasClock(player common.Color) bool {
	return t.players[player] != nil
}
