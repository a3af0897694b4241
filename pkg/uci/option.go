package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errOptionRange = errors.New("option value out of range")

// Option is an engine parameter the GUI can list with "uci" and change with "setoption".
type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

type BoolOption struct {
	Name  string
	Value *bool
}

func (opt *BoolOption) UciName() string {
	return opt.Name
}

func (opt *BoolOption) UciString() string {
	return fmt.Sprintf("option name %v type check default %v", opt.Name, *opt.Value)
}

// Set accepts the check values a GUI sends ("true" and "false") in any case.
func (opt *BoolOption) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		*opt.Value = true
	case "false":
		*opt.Value = false
	default:
		return fmt.Errorf("option %v: bad check value %q", opt.Name, s)
	}
	return nil
}

// IntOption is a spin option. Set leaves Value unchanged on a rejected value.
type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) UciName() string {
	return opt.Name
}

func (opt *IntOption) UciString() string {
	return fmt.Sprintf("option name %v type spin default %v min %v max %v",
		opt.Name, *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	var v, err = strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("option %v: %w", opt.Name, err)
	}
	if v < opt.Min || v > opt.Max {
		return fmt.Errorf("option %v: %w: %v not in [%v, %v]",
			opt.Name, errOptionRange, v, opt.Min, opt.Max)
	}
	*opt.Value = v
	return nil
}

// ButtonOption runs Action when the GUI presses the button.
type ButtonOption struct {
	Name   string
	Action func()
}

func (opt *ButtonOption) UciName() string {
	return opt.Name
}

func (opt *ButtonOption) UciString() string {
	return fmt.Sprintf("option name %v type button", opt.Name)
}

func (opt *ButtonOption) Set(s string) error {
	opt.Action()
	return nil
}
