package engine

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// DebugLog mirrors protocol traffic into a file when the Debug Log File
// option names one. An empty path closes the current file and stops
// logging; switching paths mid-session closes the old file first.
type DebugLog struct {
	file   *os.File
	logger *charmlog.Logger
}

// Start begins logging to path, replacing any active log. Called from the
// Debug Log File option handler, so failures must not take the engine
// down; they are reported on the protocol channel as an info string.
func (dl *DebugLog) Start(path string) {
	dl.Stop()
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Printf("info string could not open debug log %s: %v\n", path, err)
		return
	}
	dl.file = f
	dl.logger = charmlog.NewWithOptions(f, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})
}

// Stop closes the active log, if any.
func (dl *DebugLog) Stop() {
	if dl.file != nil {
		dl.file.Close()
		dl.file = nil
		dl.logger = nil
	}
}

// Active reports whether a log file is open.
func (dl *DebugLog) Active() bool { return dl.file != nil }

// Recv records a line read from the GUI.
func (dl *DebugLog) Recv(line string) {
	if dl.logger != nil {
		dl.logger.Info(line, "dir", "recv")
	}
}

// Send records a line written to the GUI.
func (dl *DebugLog) Send(line string) {
	if dl.logger != nil {
		dl.logger.Info(line, "dir", "send")
	}
}
