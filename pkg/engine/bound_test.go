package engine

import (
	"math"
	"testing"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

func TestBoundMinMax(t *testing.T) {
	var minBound, maxBound, exact = NewMinBound[int32](16), NewMaxBound[int32](16), NewExactBound[int32](16)
	if minBound.Max() != math.MaxInt32 || minBound.Min() != 16 {
		t.Error(minBound)
	}
	if maxBound.Max() != 16 || maxBound.Min() != math.MinInt32 {
		t.Error(maxBound)
	}
	if exact.Max() != 16 || exact.Min() != 16 {
		t.Error(exact)
	}
}

func TestBoundSkipSearch(t *testing.T) {
	for alpha := int32(-50); alpha <= 50; alpha += 10 {
		for beta := alpha + 1; beta <= 60; beta += 10 {
			if v, ok := NewExactBound[int32](16).SkipSearch(alpha, beta); !ok || v != 16 {
				t.Error("exact must always skip", alpha, beta)
			}
			if _, ok := NewMinBound[int32](16).SkipSearch(alpha, beta); ok != (16 >= beta) {
				t.Error("min", alpha, beta)
			}
			if _, ok := NewMaxBound[int16](16).SkipSearch(int16(alpha), int16(beta)); ok != (16 <= alpha) {
				t.Error("max", alpha, beta)
			}
		}
	}
}

func TestBoundUpdateAlphaBeta(t *testing.T) {
	type window struct{ alpha, beta int32 }
	var tests = []struct {
		bound Bound[int32]
		in    window
		want  window
	}{
		{NewMinBound[int32](16), window{-100, 0}, window{16, 16}},
		{NewMinBound[int32](16), window{-100, 100}, window{16, 100}},
		{NewMinBound[int32](16), window{100, 200}, window{100, 200}},
		{NewMaxBound[int32](16), window{-100, 0}, window{-100, 0}},
		{NewMaxBound[int32](16), window{-100, 100}, window{-100, 16}},
		{NewMaxBound[int32](16), window{100, 200}, window{16, 16}},
		{NewExactBound[int32](16), window{-100, 0}, window{16, 16}},
		{NewExactBound[int32](16), window{-100, 100}, window{16, 16}},
		{NewExactBound[int32](16), window{100, 200}, window{16, 16}},
	}
	for _, test := range tests {
		var alpha, beta = test.bound.UpdateAlphaBeta(test.in.alpha, test.in.beta)
		if (window{alpha, beta}) != test.want {
			t.Error(test.bound.Kind, test.in, alpha, beta, test.want)
		}
	}
}

func TestBoundEntry(t *testing.T) {
	var entry = NewBoundEntry(NewMinBound[int32](16), 10, common.MoveEmpty)
	if _, ok := entry.SkipSearch(15, -100, 0); ok {
		t.Error("deeper query must not skip")
	}
	if _, ok := entry.SkipSearch(10, -100, 100); ok {
		t.Error("bound inside window must not skip")
	}
	if v, ok := entry.SkipSearch(10, -100, 0); !ok || v != 16 {
		t.Error(v, ok)
	}
	if alpha, beta := entry.UpdateAlphaBeta(15, -100, 100); alpha != -100 || beta != 100 {
		t.Error(alpha, beta)
	}
	if alpha, beta := entry.UpdateAlphaBeta(10, -100, 100); alpha != 16 || beta != 100 {
		t.Error(alpha, beta)
	}
}
