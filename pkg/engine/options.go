package engine

import (
	"time"
)

type Options struct {
	MaxDepth         int
	MoveOverhead     int
	ProgressMinNodes int
}

func NewOptions() Options {
	return Options{
		MaxDepth:         64,
		MoveOverhead:     30,
		ProgressMinNodes: 0,
	}
}

func (o *Options) moveOverhead() time.Duration {
	return time.Duration(o.MoveOverhead) * time.Millisecond
}
