package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"musketeer-engine/engine"

	"github.com/dylhunn/dragontoothmg"
)

func main() {
	uciLoop()
}

// engineProcess bundles the registry, the subsystems its options
// reconfigure, and the board the command loop plays on. One instance per
// process; every command runs to completion before the next is read.
type engineProcess struct {
	options  *engine.OptionsMap
	tt       *engine.TransTable
	pool     *engine.ThreadPool
	dlog     *engine.DebugLog
	tb       *engine.Tablebase
	values   *engine.PieceValues
	searcher *engine.Searcher
	board    dragontoothmg.Board
	xboard   bool
}

func newEngineProcess() *engineProcess {
	p := &engineProcess{
		tt:     &engine.TransTable{},
		pool:   &engine.ThreadPool{},
		dlog:   &engine.DebugLog{},
		tb:     &engine.Tablebase{},
		values: &engine.PieceValues{},
	}
	p.options = engine.NewOptions(&engine.Subsystems{
		TransTable: p.tt,
		Pool:       p.pool,
		Log:        p.dlog,
		Tablebase:  p.tb,
		Values:     p.values,
		Out:        os.Stdout,
	})
	// Bring the subsystems in line with the declared defaults.
	p.tt.Resize(p.optionInt("Hash"))
	p.pool.SetSize(p.optionInt("Threads"))
	p.values.Recompute(p.options)
	p.searcher = &engine.Searcher{TT: p.tt, Pool: p.pool}
	p.board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
	return p
}

func (p *engineProcess) optionInt(name string) int {
	o, ok := p.options.Lookup(name)
	if !ok {
		return 0
	}
	return o.Int()
}

func uciLoop() {
	p := newEngineProcess()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		p.dlog.Recv(line)
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name Musketeer 1.0")
			fmt.Println("id author the Musketeer developers")
			fmt.Println(p.options)
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "setoption":
			name, value := parseSetOption(tokens)
			if o, ok := p.options.Lookup(name); ok {
				o.Set(value)
			} else {
				fmt.Println("No such option:", name)
			}
		case "ucinewgame":
			p.board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
			p.tt.Clear()
			p.pool.ResetForNewGame()
		case "position":
			p.handlePosition(tokens)
		case "go":
			if p.xboard {
				p.xboardCommand(tokens)
				continue
			}
			p.handleGo(tokens)
		case "stop":
			p.searcher.Abort()
		case "xboard":
			if o, ok := p.options.Lookup("Protocol"); ok {
				o.Set("xboard")
			}
			p.xboard = true
		case "quit":
			return
		default:
			if p.xboard && p.xboardCommand(tokens) {
				continue
			}
			fmt.Println("info string Unknown command:", line)
		}
	}
}

// parseSetOption splits a "setoption name <Name...> value <Value...>" line.
// Both the name and the value may span several tokens; the value may be
// empty (buttons are set that way).
func parseSetOption(tokens []string) (name, value string) {
	var nameParts, valueParts []string
	section := ""
	for _, tok := range tokens[1:] {
		switch strings.ToLower(tok) {
		case "name":
			if section == "" {
				section = "name"
				continue
			}
		case "value":
			if section == "name" {
				section = "value"
				continue
			}
		}
		switch section {
		case "name":
			nameParts = append(nameParts, tok)
		case "value":
			valueParts = append(valueParts, tok)
		}
	}
	return strings.Join(nameParts, " "), strings.Join(valueParts, " ")
}

func (p *engineProcess) handlePosition(tokens []string) {
	if len(tokens) < 2 {
		fmt.Println("info string Malformed position command")
		return
	}
	rest := tokens[2:]
	switch strings.ToLower(tokens[1]) {
	case "startpos":
		p.board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
	case "fen":
		var fenParts []string
		for len(rest) > 0 && strings.ToLower(rest[0]) != "moves" {
			fenParts = append(fenParts, rest[0])
			rest = rest[1:]
		}
		if len(fenParts) == 0 {
			fmt.Println("info string Invalid fen position")
			return
		}
		p.board = dragontoothmg.ParseFen(strings.Join(fenParts, " "))
	default:
		fmt.Println("info string Invalid position subcommand")
		return
	}
	if len(rest) > 0 && strings.ToLower(rest[0]) == "moves" {
		for _, moveStr := range rest[1:] {
			if !p.applyMove(strings.ToLower(moveStr)) {
				fmt.Println("info string Move", moveStr, "not found for position", p.board.ToFen())
				return
			}
		}
	}
}

// applyMove plays moveStr if it matches a legal move in the current
// position.
func (p *engineProcess) applyMove(moveStr string) bool {
	for _, mv := range p.board.GenerateLegalMoves() {
		if mv.String() == moveStr {
			p.board.Apply(mv)
			return true
		}
	}
	parsed, err := dragontoothmg.ParseMove(moveStr)
	if err != nil {
		return false
	}
	for _, mv := range p.board.GenerateLegalMoves() {
		if mv.From() == parsed.From() && mv.To() == parsed.To() && mv.Promote() == parsed.Promote() {
			p.board.Apply(mv)
			return true
		}
	}
	return false
}

func (p *engineProcess) handleGo(tokens []string) {
	var wTime, bTime, wInc, bInc, depth, moveTime int
	for i := 1; i < len(tokens); i++ {
		arg := strings.ToLower(tokens[i])
		switch arg {
		case "infinite", "ponder":
			continue
		case "wtime", "btime", "winc", "binc", "depth", "movetime":
			if i+1 >= len(tokens) {
				fmt.Println("info string Malformed go command option", arg)
				return
			}
			n, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				fmt.Println("info string Malformed go command option; could not convert", arg)
				return
			}
			i++
			switch arg {
			case "wtime":
				wTime = n
			case "btime":
				bTime = n
			case "winc":
				wInc = n
			case "binc":
				bInc = n
			case "depth":
				depth = n
			case "movetime":
				moveTime = n
			}
		default:
			fmt.Println("info string Unknown go subcommand", arg)
		}
	}

	limits := engine.SearchLimits{
		Depth:        depth,
		MoveOverhead: p.optionInt("Move Overhead"),
	}
	if depth == 0 && moveTime == 0 && wTime == 0 && bTime == 0 {
		// Bare "go": cap the depth rather than search forever.
		limits.Depth = 6
	}
	if moveTime > 0 {
		limits.MoveTimeMs = moveTime
	} else {
		remaining, inc := wTime, wInc
		if !p.board.Wtomove {
			remaining, inc = bTime, bInc
		}
		if remaining > 0 {
			// Same shape as the slow-mover scaling: a fraction of the
			// clock, scaled by the option, plus the increment.
			limits.MoveTimeMs = remaining*p.optionInt("Slow Mover")/(84*40) + inc
			limits.MoveTimeMs = engine.Max(limits.MoveTimeMs, p.optionInt("Minimum Thinking Time"))
		}
	}

	// Probe knobs follow their options at search setup.
	p.tb.ProbeDepth = p.optionInt("SyzygyProbeDepth")
	p.tb.ProbeLimit = p.optionInt("SyzygyProbeLimit")
	if o, ok := p.options.Lookup("Syzygy50MoveRule"); ok {
		p.tb.UseRule50 = o.Bool()
	}

	best := p.searcher.BestMove(&p.board, limits)
	if best == "" {
		fmt.Println("bestmove (none)")
		return
	}
	fmt.Println("bestmove", best)
}
