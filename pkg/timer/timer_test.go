package timer

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

func within(x, y time.Duration) bool {
	var delta = x - y
	if delta < 0 {
		delta = -delta
	}
	return delta < 50*time.Millisecond
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

func TestWithIncrementLimits(t *testing.T) {
	var timer = NewFromDurations(Config{
		WhiteTime:      durationPtr(5 * time.Second),
		WhiteIncrement: 1 * time.Second,
		BlackTime:      durationPtr(7 * time.Second),
		BlackIncrement: 2 * time.Second,
		Player:         common.White,
	})
	var want = common.LimitsType{
		HasWhiteTime:   true,
		HasBlackTime:   true,
		WhiteTime:      5000,
		WhiteIncrement: 1000,
		BlackTime:      7000,
		BlackIncrement: 2000,
	}
	if diff := cmp.Diff(want, timer.Limits()); diff != "" {
		t.Error(diff)
	}
}

func TestWithoutIncrementLimits(t *testing.T) {
	var timer = NewWithoutIncrement(5 * time.Second)
	var want = common.LimitsType{HasWhiteTime: true, HasBlackTime: true, WhiteTime: 5000, BlackTime: 5000}
	if diff := cmp.Diff(want, timer.Limits()); diff != "" {
		t.Error(diff)
	}
}

func TestInfiniteLimits(t *testing.T) {
	var timer = NewFromDurations(Config{BlackTime: durationPtr(time.Second), Player: common.White})
	if !timer.Limits().Infinite {
		t.Error("side to move without clock must search infinitely")
	}
	if NewStaticMoveTime(time.Second).Limits().Infinite {
		t.Error("move time is not infinite")
	}
	if _, ok := timer.RemainingFor(common.White); ok {
		t.Error("white is untimed")
	}
}

func TestFromLimits(t *testing.T) {
	var limits = common.LimitsType{WhiteTime: 60000, BlackTime: 50000, WhiteIncrement: 500, MovesToGo: 20}
	var timer = NewFromLimits(limits, common.Black)
	if !timer.Started() || timer.Player() != common.Black {
		t.Error("timer must be started for black")
	}
	if timer.MovesToGo() != 20 || timer.PeriodicBonus() != 50*time.Second {
		t.Error(timer.MovesToGo(), timer.PeriodicBonus())
	}
	if d, ok := timer.RemainingFor(common.White); !ok || d != time.Minute {
		t.Error(d, ok)
	}
	if d, ok := timer.RemainingFor(common.Black); !ok || !within(d, 50*time.Second) {
		t.Error(d, ok)
	}
	timer.UpdateFromLimits(common.LimitsType{WhiteTime: 1000, BlackTime: 2000})
	if d, _ := timer.RemainingFor(common.White); d != time.Second {
		t.Error(d)
	}
	if timer.PeriodicBonus() != 50*time.Second {
		t.Error("bonus must be kept")
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	var timer = NewFromDurations(Config{
		WhiteTime: durationPtr(time.Second),
		BlackTime: durationPtr(time.Second),
		Player:    common.White,
		Start:     time.Now().Add(-2 * time.Second),
	})
	if d, _ := timer.RemainingFor(common.White); d != 0 {
		t.Error(d)
	}
	if d, _ := timer.RemainingFor(common.Black); d != time.Second {
		t.Error("waiting side keeps its time", d)
	}
	timer.MadeMove()
	if d, _ := timer.RemainingFor(common.White); d != 0 {
		t.Error(d)
	}
}

func TestMadeMoveWithIncrement(t *testing.T) {
	var timer = NewWithIncrement(5*time.Second, time.Second)
	timer.MadeMove()
	if d, _ := timer.RemainingFor(common.White); d != 6*time.Second {
		t.Error(d)
	}
	if timer.Player() != common.Black || !timer.Started() {
		t.Error("black must be on move")
	}
	timer.MadeMove()
	if d, _ := timer.RemainingFor(common.Black); !within(d, 6*time.Second) {
		t.Error(d)
	}
}

func TestPeriodicBonus(t *testing.T) {
	var timer = NewFromDurations(Config{
		WhiteTime:      durationPtr(10 * time.Second),
		BlackTime:      durationPtr(10 * time.Second),
		MovesToGo:      2,
		StartMovesToGo: 2,
		PeriodicBonus:  10 * time.Second,
	})
	for i := 0; i < 3; i++ {
		timer.MadeMove()
	}
	if timer.MovesToGo() != 1 {
		t.Error(timer.MovesToGo())
	}
	timer.MadeMove()
	if timer.MovesToGo() != 2 {
		t.Error(timer.MovesToGo())
	}
	if d, _ := timer.RemainingFor(common.Black); !within(d, 20*time.Second) {
		t.Error(d)
	}
	if d, _ := timer.RemainingFor(common.White); !within(d, 20*time.Second) {
		t.Error(d)
	}
}

func TestExhaustedClockFromLimits(t *testing.T) {
	var tests = []common.LimitsType{
		{HasWhiteTime: true, WhiteTime: 0, HasBlackTime: true, BlackTime: 60000},
		{HasWhiteTime: true, WhiteTime: -50, HasBlackTime: true, BlackTime: 60000},
		{WhiteTime: -50, BlackTime: 60000},
	}
	for _, limits := range tests {
		var timer = NewFromLimits(limits, common.White)
		if !timer.HasClock(common.White) {
			t.Error("white clock must exist", limits)
			continue
		}
		if d, ok := timer.RemainingFor(common.White); !ok || d != 0 {
			t.Error(limits, d, ok)
		}
		var back = timer.Limits()
		if back.Infinite || !back.HasWhiteTime || back.WhiteTime != 0 {
			t.Error(limits, back)
		}
	}
	if NewFromLimits(common.LimitsType{BlackTime: 60000}, common.White).HasClock(common.White) {
		t.Error("missing white time must leave white untimed")
	}
}
