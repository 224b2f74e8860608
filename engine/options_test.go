package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubsystems() (*Subsystems, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Subsystems{
		TransTable: &TransTable{},
		Pool:       &ThreadPool{},
		Log:        &DebugLog{},
		Tablebase:  &Tablebase{},
		Values:     &PieceValues{},
		Out:        out,
	}, out
}

func TestCaseInsensitiveLess(t *testing.T) {
	assert.True(t, CaseInsensitiveLess("apple", "Banana"))
	assert.False(t, CaseInsensitiveLess("Banana", "apple"))
	assert.True(t, CaseInsensitiveLess("Hash", "hasher"))

	// Names equal under folding are unordered both ways.
	assert.False(t, CaseInsensitiveLess("Clear Hash", "clear hash"))
	assert.False(t, CaseInsensitiveLess("clear hash", "Clear Hash"))
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	om := NewOptionsMap()
	want := om.Add("Clear Hash", NewButtonOption(nil))

	for _, name := range []string{"Clear Hash", "clear hash", "CLEAR HASH", "cLeAr HaSh"} {
		got, ok := om.Lookup(name)
		require.True(t, ok, "lookup %q", name)
		assert.Same(t, want, got)
	}
	_, ok := om.Lookup("Clear  Hash")
	assert.False(t, ok)
}

func TestSpinBoundsAreTransactional(t *testing.T) {
	var seen []int
	om := NewOptionsMap()
	threads := om.Add("Threads", NewSpinOption(1, 1, 512, func(o *Option) {
		seen = append(seen, o.Int())
	}))

	threads.Set("4")
	require.Equal(t, 4, threads.Int())
	require.Equal(t, []int{4}, seen, "handler must observe the committed value")

	threads.Set("0")
	assert.Equal(t, 4, threads.Int(), "rejected value must not change state")
	assert.Len(t, seen, 1, "rejected value must not fire the handler")

	threads.Set("513")
	assert.Equal(t, 4, threads.Int())

	threads.Set("")
	assert.Equal(t, 4, threads.Int())

	threads.Set("not-a-number")
	assert.Equal(t, 4, threads.Int())

	// Fractional values inside the range are accepted and truncate on read.
	threads.Set("6.5")
	assert.Equal(t, 6, threads.Int())
	assert.Len(t, seen, 2)
}

func TestComboMatchingIsByteExact(t *testing.T) {
	om := NewOptionsMap()
	proto := om.Add("Protocol", NewComboOption("uci", []string{"uci", "xboard"}, nil))

	proto.Set("xboard")
	require.Equal(t, "xboard", proto.Text())

	// Combo values, unlike option names, never case-fold on assignment.
	proto.Set("XBoard")
	assert.Equal(t, "xboard", proto.Text())

	proto.Set("fics")
	assert.Equal(t, "xboard", proto.Text())

	// Reading back compares case-insensitively, as option names do.
	assert.True(t, proto.Equals("XBOARD"))
	assert.False(t, proto.Equals("uci"))
}

func TestCheckAcceptsOnlyBoolLiterals(t *testing.T) {
	om := NewOptionsMap()
	ponder := om.Add("Ponder", NewCheckOption(false, nil))

	for _, bad := range []string{"True", "FALSE", "1", "0", "yes", ""} {
		ponder.Set(bad)
		assert.False(t, ponder.Bool(), "value %q must be rejected", bad)
	}
	ponder.Set("true")
	assert.True(t, ponder.Bool())
	ponder.Set("false")
	assert.False(t, ponder.Bool())
}

func TestButtonFiresWithoutStoringValue(t *testing.T) {
	fired := 0
	om := NewOptionsMap()
	clear := om.Add("Clear Hash", NewButtonOption(func(*Option) { fired++ }))

	clear.Set("")
	clear.Set("anything")
	assert.Equal(t, 2, fired)
	assert.Equal(t, "button", clear.TypeName())
	assert.Panics(t, func() { clear.Text() })
}

func TestWrongKindAccessorPanics(t *testing.T) {
	om := NewOptionsMap()
	spin := om.Add("MultiPV", NewSpinOption(1, 1, 500, nil))
	str := om.Add("SyzygyPath", NewStringOption("<empty>", nil))

	assert.Panics(t, func() { spin.Text() })
	assert.Panics(t, func() { spin.Bool() })
	assert.Panics(t, func() { str.Int() })
	assert.Panics(t, func() { str.Equals("x") })
}

func TestPrintingFollowsInsertionOrder(t *testing.T) {
	om := NewOptionsMap()
	om.Add("Hash", NewSpinOption(16, 1, 131072, nil))
	om.Add("Threads", NewSpinOption(1, 1, 512, nil))
	om.Add("Ponder", NewCheckOption(false, nil))

	want := strings.Join([]string{
		"option name Hash type spin default 16 min 1 max 131072",
		"option name Threads type spin default 1 min 1 max 512",
		"option name Ponder type check default false",
	}, "\n")
	require.Equal(t, want, om.String())

	// Deterministic: printing twice yields identical bytes.
	assert.Equal(t, om.String(), om.String())
}

func TestUCIFormatPerKind(t *testing.T) {
	om := NewOptionsMap()
	om.Add("Debug Log File", NewStringOption("", nil))
	om.Add("Analysis Contempt", NewComboOption("Both", []string{"Both", "Off", "White", "Black"}, nil))
	om.Add("Syzygy50MoveRule", NewCheckOption(true, nil))
	om.Add("Clear Hash", NewButtonOption(nil))

	lines := strings.Split(om.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "option name Debug Log File type string default ", lines[0])
	assert.Equal(t, "option name Analysis Contempt type combo default Both var Both var Off var White var Black", lines[1])
	assert.Equal(t, "option name Syzygy50MoveRule type check default true", lines[2])
	assert.Equal(t, "option name Clear Hash type button", lines[3])
}

func TestXBoardFormat(t *testing.T) {
	om := NewOptionsMap()
	proto := om.Add("Protocol", NewComboOption("uci", []string{"uci", "xboard"}, nil))
	om.Add("Analysis Contempt", NewComboOption("Both", []string{"Both", "Off", "White", "Black"}, nil))
	om.Add("Hash", NewSpinOption(16, 1, 2048, nil))
	om.Add("Ponder", NewCheckOption(false, nil))
	om.Add("Syzygy50MoveRule", NewCheckOption(true, nil))
	om.Add("SyzygyPath", NewStringOption("<empty>", nil))
	om.Add("Clear Hash", NewButtonOption(nil))

	proto.Set("xboard")
	lines := strings.Split(om.String(), "\n")
	require.Len(t, lines, 6, "Protocol itself must not be listed")
	assert.Equal(t, `feature option="Analysis Contempt -combo Both /// Off /// White /// Black"`, lines[0])
	assert.Equal(t, `feature option="Hash -spin 16 1 2048"`, lines[1])
	assert.Equal(t, `feature option="Ponder -check 0"`, lines[2])
	assert.Equal(t, `feature option="Syzygy50MoveRule -check 1"`, lines[3])
	assert.Equal(t, `feature option="SyzygyPath -string <empty>"`, lines[4])
	assert.Equal(t, `feature option="Clear Hash -button"`, lines[5])
}

func TestCatalogDeclaration(t *testing.T) {
	sub, _ := testSubsystems()
	om := NewOptions(sub)

	require.Equal(t, 41, om.Len())

	lines := strings.Split(om.String(), "\n")
	require.Len(t, lines, 40, "every option except Protocol prints")
	assert.Equal(t, "option name Debug Log File type string default ", lines[0])
	assert.Equal(t, "option name FortressValueEg type spin default 2100 min 1100 max 3100", lines[39])

	hash, ok := om.Lookup("hash")
	require.True(t, ok)
	assert.Equal(t, 16, hash.Int())
}

func TestCatalogWiresSubsystems(t *testing.T) {
	sub, _ := testSubsystems()
	om := NewOptions(sub)

	hash, _ := om.Lookup("Hash")
	hash.Set("8")
	assert.Equal(t, 8, sub.TransTable.SizeMB())

	threads, _ := om.Lookup("Threads")
	threads.Set("4")
	assert.Equal(t, 4, sub.Pool.Size())

	cannon, _ := om.Lookup("CannonValueMg")
	cannon.Set("1800")
	assert.Equal(t, 1800, sub.Values.MG[Cannon])

	// Out-of-range piece value leaves the table alone.
	cannon.Set("100")
	assert.Equal(t, 1800, sub.Values.MG[Cannon])
}

func TestVariantAnnouncement(t *testing.T) {
	sub, out := testSubsystems()
	om := NewOptions(sub)

	variant, _ := om.Lookup("UCI_Variant")
	variant.Set("musketeer")
	assert.Contains(t, out.String(), "info string variant musketeer files 8 ranks 10 pocket 0 template seirawan")

	out.Reset()
	proto, _ := om.Lookup("Protocol")
	proto.Set("xboard")
	variant.Set("musketeer")
	assert.Contains(t, out.String(), "setup (PNBRQ.E....C.AF.MH.SU........D............LKpnbrq.e....c.af.mh.su........d............lk) 8x10+0_seirawan")
	assert.Contains(t, out.String(), "piece L& NB2")
	assert.Contains(t, out.String(), "piece K& KisO2")
}

func TestHashCeiling(t *testing.T) {
	sub, _ := testSubsystems()
	om := NewOptions(sub)

	hash, _ := om.Lookup("Hash")
	hash.Set("999999999")
	assert.Equal(t, 16, hash.Int(), "value above the platform ceiling is rejected")
}
