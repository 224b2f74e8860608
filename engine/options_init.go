package engine

import (
	"fmt"
	"io"
	"math/bits"
)

// XBoardStartFEN is the musketeer start position on the 8x10 board: the
// two outer ranks hold the selected musketeer pieces in reserve.
const XBoardStartFEN = "8/rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR/8 w KQkq - 0 1"

// Subsystems collects the live engine components that option changes
// reconfigure. The registry itself never reaches into search or table
// internals; every handler goes through this struct.
type Subsystems struct {
	TransTable *TransTable
	Pool       *ThreadPool
	Log        *DebugLog
	Tablebase  *Tablebase
	Values     *PieceValues
	Out        io.Writer // protocol output, used by the variant announcement
}

// NewOptions declares the full option catalog with its hard-coded defaults
// and wires each handler to the subsystem it reconfigures. Declaration
// order here is printing order on the wire.
func NewOptions(sub *Subsystems) *OptionsMap {
	// at most 2^32 clusters
	maxHashMB := 2048
	if bits.UintSize == 64 {
		maxHashMB = 131072
	}

	onHashSize := func(o *Option) { sub.TransTable.Resize(o.Int()) }
	onClearHash := func(*Option) { sub.TransTable.Clear() }
	onThreads := func(o *Option) { sub.Pool.SetSize(o.Int()) }
	onLogger := func(o *Option) { sub.Log.Start(o.Text()) }
	onTBPath := func(o *Option) { sub.Tablebase.Init(o.Text()) }

	om := NewOptionsMap()

	onPieceValue := func(*Option) { sub.Values.Recompute(om) }
	onVariant := func(o *Option) { announceVariant(om, o, sub.Out) }

	om.Add("Protocol", NewComboOption("uci", []string{"uci", "xboard"}, nil))
	om.Add("Debug Log File", NewStringOption("", onLogger))
	om.Add("Contempt", NewSpinOption(21, -100, 100, nil))
	om.Add("Analysis Contempt", NewComboOption("Both", []string{"Both", "Off", "White", "Black"}, nil))
	om.Add("Threads", NewSpinOption(1, 1, 512, onThreads))
	om.Add("Hash", NewSpinOption(16, 1, maxHashMB, onHashSize))
	om.Add("Clear Hash", NewButtonOption(onClearHash))
	om.Add("Ponder", NewCheckOption(false, nil))
	om.Add("MultiPV", NewSpinOption(1, 1, 500, nil))
	om.Add("Skill Level", NewSpinOption(20, 0, 20, nil))
	om.Add("Move Overhead", NewSpinOption(30, 0, 5000, nil))
	om.Add("Minimum Thinking Time", NewSpinOption(20, 0, 5000, nil))
	om.Add("Slow Mover", NewSpinOption(84, 10, 1000, nil))
	om.Add("nodestime", NewSpinOption(0, 0, 10000, nil))
	om.Add("UCI_Variant", NewComboOption("musketeer", []string{"musketeer"}, onVariant))
	om.Add("UCI_Chess960", NewCheckOption(false, nil))
	om.Add("UCI_AnalyseMode", NewCheckOption(false, nil))
	om.Add("SyzygyPath", NewStringOption("<empty>", onTBPath))
	om.Add("SyzygyProbeDepth", NewSpinOption(1, 1, 100, nil))
	om.Add("Syzygy50MoveRule", NewCheckOption(true, nil))
	om.Add("SyzygyProbeLimit", NewSpinOption(6, 0, 6, nil))
	om.Add("CannonValueMg", NewSpinOption(1710, 710, 2710, onPieceValue))
	om.Add("CannonValueEg", NewSpinOption(2239, 1239, 3239, onPieceValue))
	om.Add("LeopardValueMg", NewSpinOption(1648, 648, 2648, onPieceValue))
	om.Add("LeopardValueEg", NewSpinOption(2014, 1014, 3014, onPieceValue))
	om.Add("ArchbishopValueMg", NewSpinOption(2036, 1036, 3036, onPieceValue))
	om.Add("ArchbishopValueEg", NewSpinOption(2202, 1202, 3202, onPieceValue))
	om.Add("ChancellorValueMg", NewSpinOption(2251, 1251, 3251, onPieceValue))
	om.Add("ChancellorValueEg", NewSpinOption(2344, 1344, 3344, onPieceValue))
	om.Add("SpiderValueMg", NewSpinOption(2321, 1321, 3321, onPieceValue))
	om.Add("SpiderValueEg", NewSpinOption(2718, 1718, 3718, onPieceValue))
	om.Add("DragonValueMg", NewSpinOption(3280, 2280, 4280, onPieceValue))
	om.Add("DragonValueEg", NewSpinOption(2769, 1769, 3769, onPieceValue))
	om.Add("UnicornValueMg", NewSpinOption(1584, 584, 2584, onPieceValue))
	om.Add("UnicornValueEg", NewSpinOption(1772, 772, 2772, onPieceValue))
	om.Add("HawkValueMg", NewSpinOption(1537, 537, 2537, onPieceValue))
	om.Add("HawkValueEg", NewSpinOption(1561, 561, 2561, onPieceValue))
	om.Add("ElephantValueMg", NewSpinOption(1770, 770, 2770, onPieceValue))
	om.Add("ElephantValueEg", NewSpinOption(2000, 1000, 3000, onPieceValue))
	om.Add("FortressValueMg", NewSpinOption(1956, 956, 2956, onPieceValue))
	om.Add("FortressValueEg", NewSpinOption(2100, 1100, 3100, onPieceValue))

	return om
}

// announceVariant tells the GUI what board it is looking at. XBoard wants a
// setup command plus Betza movement definitions for the musketeer pieces;
// UCI GUIs get a plain info string.
func announceVariant(om *OptionsMap, o *Option, out io.Writer) {
	if out == nil {
		return
	}
	if proto, ok := om.Lookup("Protocol"); ok && proto.Equals("xboard") {
		fmt.Fprintf(out, "setup (PNBRQ.E....C.AF.MH.SU........D............LKpnbrq.e....c.af.mh.su........d............lk) 8x10+0_seirawan %s\n", XBoardStartFEN)
		// Betza notation, https://www.gnu.org/software/xboard/Betza.html
		fmt.Fprintln(out, "piece L& NB2")
		fmt.Fprintln(out, "piece C& llNrrNDK")
		fmt.Fprintln(out, "piece E& KDA")
		fmt.Fprintln(out, "piece U& CN")
		fmt.Fprintln(out, "piece S& B2DN")
		fmt.Fprintln(out, "piece D& QN")
		fmt.Fprintln(out, "piece F& B3DfNbN")
		fmt.Fprintln(out, "piece M& NR")
		fmt.Fprintln(out, "piece A& NB")
		fmt.Fprintln(out, "piece H& DHAG")
		fmt.Fprintln(out, "piece K& KisO2")
		return
	}
	fmt.Fprintf(out, "info string variant %s files 8 ranks 10 pocket 0 template seirawan startpos %s\n",
		o.Text(), XBoardStartFEN)
}
