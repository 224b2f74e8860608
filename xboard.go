package main

import (
	"fmt"
	"strings"

	"musketeer-engine/engine"

	"github.com/dylhunn/dragontoothmg"
)

// xboardCommand handles the XBoard side of the protocol once the Protocol
// option has switched to xboard. Returns false for commands this side does
// not know, so the caller can complain once in one place.
func (p *engineProcess) xboardCommand(tokens []string) bool {
	switch strings.ToLower(tokens[0]) {
	case "protover":
		p.sendFeatures()
	case "accepted", "rejected", "force", "random", "hard", "easy", "post", "nopost", "computer":
		// handshake and mode chatter, nothing to do
	case "new":
		p.board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		p.tt.Clear()
		p.pool.ResetForNewGame()
	case "ping":
		if len(tokens) > 1 {
			fmt.Println("pong", tokens[1])
		}
	case "option":
		if len(tokens) < 2 {
			return true
		}
		p.setXBoardOption(strings.Join(tokens[1:], " "))
	case "usermove":
		if len(tokens) < 2 || !p.applyMove(strings.ToLower(tokens[1])) {
			fmt.Println("Illegal move:", strings.Join(tokens[1:], " "))
		}
	case "go":
		best := p.searcher.BestMove(&p.board, engine.SearchLimits{
			Depth:        6,
			MoveOverhead: p.optionInt("Move Overhead"),
		})
		if best == "" {
			return true
		}
		p.applyMove(best)
		fmt.Println("move", best)
	default:
		return false
	}
	return true
}

// sendFeatures answers protover with the engine's feature set, including
// one option feature per registered option.
func (p *engineProcess) sendFeatures() {
	fmt.Println("feature done=0")
	fmt.Println(`feature myname="Musketeer 1.0" setboard=1 usermove=1 ping=1 sigint=0 sigterm=0 debug=1 variants="musketeer"`)
	fmt.Println(p.options)
	fmt.Println("feature done=1")
}

// setXBoardOption applies an "option Name=Value" command. Buttons arrive
// without the =Value part.
func (p *engineProcess) setXBoardOption(arg string) {
	name, value := arg, ""
	if i := strings.IndexByte(arg, '='); i >= 0 {
		name, value = arg[:i], arg[i+1:]
	}
	if o, ok := p.options.Lookup(name); ok {
		o.Set(value)
	} else {
		fmt.Println("Error (unknown option):", name)
	}
}
