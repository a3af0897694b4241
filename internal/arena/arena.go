package arena

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Arena plays a match between two engines. Every opening is played twice
// with colors reversed.
type Arena struct {
	Concurrency int
	TimeControl TimeControl
	Openings    []string
	Shuffle     bool
	NewEngineA  func() (Engine, error)
	NewEngineB  func() (Engine, error)
	// PGN receives the finished games when not nil.
	PGN io.Writer
}

func (a *Arena) Run(ctx context.Context) (Statistics, error) {
	if err := a.TimeControl.validate(); err != nil {
		return Statistics{}, err
	}
	if len(a.Openings) == 0 {
		return Statistics{}, fmt.Errorf("no openings")
	}
	var concurrency = a.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	log.Info().
		Int("numCPU", runtime.NumCPU()).
		Int("gomaxprocs", runtime.GOMAXPROCS(0)).
		Int("gameConcurrency", concurrency).
		Interface("timeControl", a.TimeControl).
		Msg("arena started")

	var openings = a.Openings
	if a.Shuffle {
		openings = shuffleOpenings(openings)
	}

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan GameResult)

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, openings, gameInfos)
	})

	var stat Statistics
	g.Go(func() error {
		var err error
		stat, err = showResults(ctx, gameResults, a.PGN)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	log.Info().Err(err).Msg("arena finished")
	return stat, err
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- GameResult,
) error {
	engineA, err := a.NewEngineA()
	if err != nil {
		return err
	}
	defer closeEngine(engineA)
	engineB, err := a.NewEngineB()
	if err != nil {
		return err
	}
	defer closeEngine(engineB)

	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, engineA, engineB, a.TimeControl, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

func closeEngine(eng Engine) {
	if closer, ok := eng.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Error().Err(err).Msg("close engine failed")
		}
	}
}
