package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

var goKeywords = []string{
	"searchmoves", "ponder", "wtime", "btime", "winc", "binc",
	"movestogo", "depth", "nodes", "mate", "movetime", "infinite",
}

// parsePosition returns the position of the "position" command and every
// position reached by its moves.
func parsePosition(args []string) ([]common.Position, error) {
	if len(args) == 0 {
		return nil, errors.New("empty position command")
	}
	var fen string
	var movesIndex = lo.IndexOf(args, "moves")
	switch args[0] {
	case "startpos":
		fen = common.InitialPositionFen
	case "fen":
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	default:
		return nil, fmt.Errorf("unknown position command %q", args[0])
	}
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	var positions = []common.Position{p}
	if movesIndex >= 0 {
		for _, smove := range args[movesIndex+1:] {
			var newPos, ok = positions[len(positions)-1].MakeMoveLAN(smove)
			if !ok {
				return nil, fmt.Errorf("parse move failed %q", smove)
			}
			positions = append(positions, newPos)
		}
	}
	return positions, nil
}

func parseLimits(args []string, p *common.Position) (result common.LimitsType, err error) {
	var intArg = func(i int) int {
		if err != nil {
			return 0
		}
		if i+1 >= len(args) {
			err = fmt.Errorf("missing value for %v", args[i])
			return 0
		}
		var v int
		v, err = strconv.Atoi(args[i+1])
		if err != nil {
			err = fmt.Errorf("bad value for %v: %w", args[i], err)
		}
		return v
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "ponder":
			result.Ponder = true
		case "infinite":
			result.Infinite = true
		case "wtime":
			result.WhiteTime = intArg(i)
			result.HasWhiteTime = true
			i++
		case "btime":
			result.BlackTime = intArg(i)
			result.HasBlackTime = true
			i++
		case "winc":
			result.WhiteIncrement = intArg(i)
			i++
		case "binc":
			result.BlackIncrement = intArg(i)
			i++
		case "movestogo":
			result.MovesToGo = intArg(i)
			i++
		case "depth":
			result.Depth = intArg(i)
			i++
		case "nodes":
			result.Nodes = intArg(i)
			i++
		case "mate":
			result.Mate = intArg(i)
			i++
		case "movetime":
			result.MoveTime = intArg(i)
			i++
		case "searchmoves":
			for i+1 < len(args) && !lo.Contains(goKeywords, args[i+1]) {
				var m, err = p.ParseMove(args[i+1])
				if err != nil {
					return common.LimitsType{}, err
				}
				result.SearchMoves = append(result.SearchMoves, m)
				i++
			}
		}
		if err != nil {
			return common.LimitsType{}, err
		}
	}
	return result, nil
}

// parseSetOption splits "name <id> [value <x>]". Both parts may contain spaces.
func parseSetOption(args []string) (name, value string, err error) {
	if len(args) < 2 || args[0] != "name" {
		return "", "", errors.New("invalid setoption arguments")
	}
	var valueIndex = lo.IndexOf(args, "value")
	if valueIndex == -1 {
		return strings.Join(args[1:], " "), "", nil
	}
	if valueIndex < 2 {
		return "", "", errors.New("invalid setoption arguments")
	}
	return strings.Join(args[1:valueIndex], " "), strings.Join(args[valueIndex+1:], " "), nil
}
