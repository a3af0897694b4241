package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

var (
	errSearchRunning  = errors.New("search still run")
	errUnknownCommand = errors.New("command not found")
)

type Engine interface {
	Prepare()
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

// Ponderer is implemented by engines that support "go ponder".
type Ponderer interface {
	PonderHit()
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	positions    []common.Position
	out          io.Writer
	thinking     bool
	engineOutput chan common.SearchInfo
	cancel       context.CancelFunc
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	var initPosition, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return &Protocol{
		name:      name,
		author:    author,
		version:   version,
		engine:    engine,
		options:   options,
		positions: []common.Position{initPosition},
	}
}

// Run reads commands from in until "quit" or end of input and writes the
// engine answers to out. Cancelling ctx closes in when it is an io.Closer,
// any other reader must reach end of input for Run to return.
func (uci *Protocol) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	uci.out = out
	var commands = make(chan string)
	var g, gctx = errgroup.WithContext(ctx)
	var stopClose = context.AfterFunc(ctx, func() {
		if closer, ok := in.(io.Closer); ok {
			closer.Close()
		}
	})
	defer stopClose()
	g.Go(func() error {
		defer close(commands)
		return readCommands(gctx, in, commands)
	})
	g.Go(func() error {
		return uci.loop(gctx, commands)
	})
	return g.Wait()
}

func readCommands(ctx context.Context, in io.Reader, commands chan<- string) error {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "quit" {
			return nil
		}
		if commandLine == "" {
			continue
		}
		select {
		case commands <- commandLine:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

func (uci *Protocol) loop(ctx context.Context, commands <-chan string) error {
	var searchResult common.SearchInfo
	for {
		select {
		case <-ctx.Done():
			uci.stopSearch()
			return ctx.Err()
		case si, ok := <-uci.engineOutput:
			if ok {
				uci.println(searchInfoToUci(si))
				searchResult = si
			} else {
				uci.println(bestMoveToUci(searchResult))
				uci.thinking = false
				uci.cancel = nil
				uci.engineOutput = nil
				searchResult = common.SearchInfo{}
			}
		case commandLine, ok := <-commands:
			if !ok {
				uci.stopSearch()
				return nil
			}
			var err = uci.handle(commandLine)
			if err != nil {
				log.Error().Err(err).Str("command", commandLine).Msg("uci command failed")
			}
		}
	}
}

// stopSearch cancels a running search and waits for it to finish.
func (uci *Protocol) stopSearch() {
	if !uci.thinking {
		return
	}
	uci.cancel()
	for range uci.engineOutput {
	}
	uci.thinking = false
}

func (uci *Protocol) println(s string) {
	fmt.Fprintln(uci.out, s)
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		switch commandName {
		case "stop":
			uci.cancel()
			return nil
		case "ponderhit":
			return uci.ponderhitCommand(fields)
		case "isready":
			uci.println("readyok")
			return nil
		}
		return errSearchRunning
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "stop", "ponderhit", "debug", "register":
		return nil
	}

	if h == nil {
		return fmt.Errorf("%w: %v", errUnknownCommand, commandName)
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	uci.println(fmt.Sprintf("id name %s %s", uci.name, uci.version))
	uci.println(fmt.Sprintf("id author %s", uci.author))
	for _, option := range uci.options {
		uci.println(option.UciString())
	}
	uci.println("uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	var name, value, err = parseSetOption(fields)
	if err != nil {
		return err
	}
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return fmt.Errorf("unhandled option %q", name)
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	uci.engine.Prepare()
	uci.println("readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	var positions, err = parsePosition(fields)
	if err != nil {
		return err
	}
	uci.positions = positions
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var limits, err = parseLimits(fields, &uci.positions[len(uci.positions)-1])
	if err != nil {
		return err
	}
	var ctx, cancel = context.WithCancel(context.Background())
	uci.cancel = cancel
	uci.thinking = true
	var output = make(chan common.SearchInfo, 3)
	uci.engineOutput = output
	var positions = uci.positions
	go func() {
		defer cancel()
		var searchResult = uci.engine.Search(ctx, common.SearchParams{
			Positions: positions,
			Limits:    limits,
			Progress: func(si common.SearchInfo) {
				select {
				case output <- si:
				default:
				}
			},
		})
		output <- searchResult
		close(output)
	}()
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.engine.Clear()
	return nil
}

func (uci *Protocol) ponderhitCommand(fields []string) error {
	if p, ok := uci.engine.(Ponderer); ok {
		p.PonderHit()
		return nil
	}
	return errors.New("ponder not supported")
}
