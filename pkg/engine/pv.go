package engine

import (
	"errors"
	"strings"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

const MaxPly = 512

var errPvOverflow = errors.New("principal variation overflow")

type Pv struct {
	items [MaxPly]common.Move
	size  int
}

func (pv *Pv) Clear() {
	pv.size = 0
}

func (pv *Pv) Push(m common.Move) {
	if pv.size >= MaxPly {
		panic(errPvOverflow)
	}
	pv.items[pv.size] = m
	pv.size++
}

func (pv *Pv) Update(m common.Move, child *Pv) {
	if 1+child.size > MaxPly {
		panic(errPvOverflow)
	}
	pv.size = 1
	pv.items[0] = m
	copy(pv.items[1:], child.items[:child.size])
	pv.size += child.size
}

func (pv *Pv) Len() int {
	return pv.size
}

func (pv *Pv) At(i int) common.Move {
	return pv.items[:pv.size][i]
}

func (pv *Pv) Moves() []common.Move {
	var result = make([]common.Move, pv.size)
	copy(result, pv.items[:pv.size])
	return result
}

func (pv *Pv) String() string {
	var sb strings.Builder
	for i, m := range pv.items[:pv.size] {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
