package controller_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/test"
)

func expectWords(t *testing.T, got []wheelwriter.Word, expected ...wheelwriter.Word) {
	t.Helper()
	if !test.ExpectEquality(t, len(got), len(expected)) {
		t.Logf("got %v, expected %v", got, expected)
		return
	}
	for i := range got {
		if !test.ExpectEquality(t, got[i], expected[i]) {
			t.Logf("got %v, expected %v", got, expected)
			return
		}
	}
}

func TestPrintText(t *testing.T) {
	tp := newTestPrinter(false)

	test.ExpectSuccess(t, tp.send("ab"))
	expectWords(t, tp.bus.take(),
		0x121, 0x003, 0x001, 0x00a,
		0x121, 0x003, 0x059, 0x00a)
	test.ExpectEquality(t, tp.takeEcho(), "ab")
	test.ExpectEquality(t, tp.Column(), 3)

	// control characters that are not recognised and bytes outside of the
	// printable range are ignored
	test.ExpectSuccess(t, tp.send("\x00\x01\x7f\x80\xff"))
	test.ExpectEquality(t, len(tp.bus.take()), 0)
	test.ExpectEquality(t, tp.takeEcho(), "")
	test.ExpectEquality(t, tp.Column(), 3)
}

func TestBold(t *testing.T) {
	tp := newTestPrinter(false)

	test.ExpectSuccess(t, tp.send("\x1bOa"))
	expectWords(t, tp.bus.take(), 0x121, 0x003, 0x001, 0x001, 0x121, 0x003, 0x001, 0x009)
	test.ExpectEquality(t, tp.Attribute(), wheelwriter.Bold)

	test.ExpectSuccess(t, tp.send("\x1b&a"))
	expectWords(t, tp.bus.take(), 0x121, 0x003, 0x001, 0x00a)
	test.ExpectEquality(t, tp.Attribute(), wheelwriter.Attribute(0))
}

func TestAttributes(t *testing.T) {
	tp := newTestPrinter(false)

	test.ExpectSuccess(t, tp.send("\x1bO\x1bE\x1bb"))
	test.ExpectEquality(t, tp.Attribute(), wheelwriter.Bold|wheelwriter.ContinuousUnderline|wheelwriter.BrokenUnderline)

	test.ExpectSuccess(t, tp.send("\x1bR"))
	test.ExpectEquality(t, tp.Attribute(), wheelwriter.Bold)

	test.ExpectSuccess(t, tp.send("\x1bE\x1bX"))
	test.ExpectEquality(t, tp.Attribute(), wheelwriter.Attribute(0))

	// carriage return cancels all attributes
	test.ExpectSuccess(t, tp.send("\x1bO\x1bEa\r"))
	test.ExpectEquality(t, tp.Attribute(), wheelwriter.Attribute(0))
	test.ExpectEquality(t, len(tp.bus.words) > 0, true)
}

func TestCarriageReturn(t *testing.T) {
	tp := newTestPrinter(false)
	test.ExpectSuccess(t, tp.send("abc"))
	tp.bus.take()
	tp.takeEcho()

	test.ExpectSuccess(t, tp.send("\r"))
	expectWords(t, tp.bus.take(), 0x121, 0x006, 0x000, 0x01e)
	test.ExpectEquality(t, tp.Column(), 1)
	test.ExpectEquality(t, tp.takeEcho(), "\r")

	test.ExpectSuccess(t, tp.send("\n"))
	expectWords(t, tp.bus.take(), 0x121, 0x005, 0x090)
	test.ExpectEquality(t, tp.takeEcho(), "\n")

	// vertical tab is a linefeed without an echo
	test.ExpectSuccess(t, tp.send("\v"))
	expectWords(t, tp.bus.take(), 0x121, 0x005, 0x090)
	test.ExpectEquality(t, tp.takeEcho(), "")
}

func TestAutoLinefeed(t *testing.T) {
	tp := newTestPrinter(true)
	test.ExpectSuccess(t, tp.send("a\r"))
	expectWords(t, tp.bus.take(),
		0x121, 0x003, 0x001, 0x00a,
		0x121, 0x006, 0x000, 0x00a,
		0x121, 0x005, 0x090)

	// switched off with an escape sequence
	test.ExpectSuccess(t, tp.send("\x1bl0"))
	test.ExpectEquality(t, tp.AutoLinefeed(), false)
	test.ExpectSuccess(t, tp.send("\r"))
	expectWords(t, tp.bus.take(), 0x121, 0x006, 0x000, 0x000)

	test.ExpectSuccess(t, tp.send("\x1bl1"))
	test.ExpectEquality(t, tp.AutoLinefeed(), true)
}

func TestTab(t *testing.T) {
	tp := newTestPrinter(false)

	// elite has a tab stop every six columns
	test.ExpectSuccess(t, tp.send("\t"))
	expectWords(t, tp.bus.take(), 0x121, 0x006, 0x080, 0x032)
	test.ExpectEquality(t, tp.Column(), 6)
	test.ExpectEquality(t, tp.takeEcho(), "     ")

	test.ExpectSuccess(t, tp.send("\t"))
	expectWords(t, tp.bus.take(), 0x121, 0x006, 0x080, 0x03c)
	test.ExpectEquality(t, tp.Column(), 12)

	// pica has a tab stop every five columns
	test.ExpectSuccess(t, tp.send("\x1bp\t"))
	expectWords(t, tp.bus.take(), 0x121, 0x006, 0x080, 0x024)
	test.ExpectEquality(t, tp.Column(), 15)
}

func TestBackspace(t *testing.T) {
	tp := newTestPrinter(false)

	// nothing happens at the left margin
	test.ExpectSuccess(t, tp.send("\b"))
	test.ExpectEquality(t, len(tp.bus.take()), 0)

	test.ExpectSuccess(t, tp.send("a\b"))
	expectWords(t, tp.bus.take(),
		0x121, 0x003, 0x001, 0x00a,
		0x121, 0x006, 0x000, 0x00a)
	test.ExpectEquality(t, tp.Column(), 1)
	test.ExpectEquality(t, tp.takeEcho(), "a\b")

	// micro backspace
	test.ExpectSuccess(t, tp.send("a\x1b\b"))
	expectWords(t, tp.bus.take(),
		0x121, 0x003, 0x001, 0x00a,
		0x121, 0x006, 0x000, 0x001)
	test.ExpectEquality(t, tp.codec.Position(), 9)
}

func TestPaperMovement(t *testing.T) {
	tp := newTestPrinter(false)
	test.ExpectSuccess(t, tp.send("\x1bU\x1bD\x1b\n\x1bu\x1bd\x07"))
	expectWords(t, tp.bus.take(),
		0x121, 0x005, 0x088,
		0x121, 0x005, 0x008,
		0x121, 0x005, 0x010,
		0x121, 0x005, 0x082,
		0x121, 0x005, 0x002,
		0x121, 0x007)
	test.ExpectEquality(t, tp.takeEcho(), "\a")
}

func TestPitch(t *testing.T) {
	tp := newTestPrinter(false)

	test.ExpectSuccess(t, tp.send("\x1bm"))
	test.ExpectEquality(t, tp.codec.Geometry(), wheelwriter.MicroElite)
	test.ExpectSuccess(t, tp.send("\x1bp"))
	test.ExpectEquality(t, tp.codec.Geometry(), wheelwriter.Pica)
	test.ExpectSuccess(t, tp.send("\x1be"))
	test.ExpectEquality(t, tp.codec.Geometry(), wheelwriter.Elite)
}

func TestUnrecognisedEscape(t *testing.T) {
	tp := newTestPrinter(false)

	// the unrecognised byte is consumed and the parser returns to ground
	test.ExpectSuccess(t, tp.send("\x1bZa"))
	expectWords(t, tp.bus.take(), 0x121, 0x003, 0x001, 0x00a)

	test.ExpectSuccess(t, tp.send("\x1b\x1aZa"))
	expectWords(t, tp.bus.take(), 0x121, 0x003, 0x001, 0x00a)

	test.ExpectSuccess(t, tp.send("\x1b\x1apXa"))
	expectWords(t, tp.bus.take(), 0x121, 0x003, 0x001, 0x00a)
	test.ExpectEquality(t, tp.takeEcho(), "aaa")
}

func TestDiagnostics(t *testing.T) {
	tp := newTestPrinter(false)

	test.ExpectSuccess(t, tp.send("\x1b\x1aa"))
	test.ExpectEquality(t, tp.takeEcho(), "\nWheelwriter Test Banner\n")

	test.ExpectSuccess(t, tp.send("\x1b\x1au"))
	test.ExpectEquality(t, tp.takeEcho(), "Uptime: 03:25:07\n")

	test.ExpectSuccess(t, tp.send("\x1b\x1ap2"))
	test.ExpectEquality(t, tp.takeEcho(), "P2: 0x12\n")

	test.ExpectSuccess(t, tp.send("\x1b\x1ae1"))
	test.ExpectEquality(t, tp.diag.errorIndicator, true)
	test.ExpectSuccess(t, tp.send("\x1b\x1ae0"))
	test.ExpectEquality(t, tp.diag.errorIndicator, false)

	test.ExpectSuccess(t, tp.send("\x1b\x1ar"))
	test.ExpectEquality(t, tp.diag.resets, 1)

	// nothing was sent to the typewriter
	test.ExpectEquality(t, len(tp.bus.take()), 0)
}

func TestVariables(t *testing.T) {
	tp := newTestPrinter(false)
	test.ExpectSuccess(t, tp.send("ab"))
	tp.takeEcho()

	test.ExpectSuccess(t, tp.send("\x1b\x1av"))
	s := tp.takeEcho()
	test.ExpectEquality(t, strings.HasPrefix(s, "\n"), true)
	test.ExpectEquality(t, strings.Contains(s, fmt.Sprintf("%-16s 3\n", "column:")), true)
	test.ExpectEquality(t, strings.Contains(s, fmt.Sprintf("%-16s 20\n", "space count:")), true)
	test.ExpectEquality(t, strings.Contains(s, fmt.Sprintf("%-16s 0x20\n", "printwheel:")), true)

	// cursor returned to the column
	test.ExpectEquality(t, strings.HasSuffix(s, "\n  "), true)
}

func TestHelp(t *testing.T) {
	tp := newTestPrinter(false)

	test.ExpectSuccess(t, tp.send("\x1bH"))
	s := tp.takeEcho()
	test.ExpectEquality(t, strings.HasSuffix(s, "<Space> for more, <ESC> to exit..."), true)

	// other keys are ignored by the pager
	test.ExpectSuccess(t, tp.send("x "))
	s = tp.takeEcho()
	test.ExpectEquality(t, strings.Contains(s, "Diagnostics/debugging:"), true)
	test.ExpectEquality(t, len(tp.bus.take()), 0)

	test.ExpectSuccess(t, tp.send("\x1bh\x1b"))
	s = tp.takeEcho()
	test.ExpectEquality(t, strings.HasSuffix(s, "\r"), true)

	// back in ground state
	test.ExpectSuccess(t, tp.send("a"))
	expectWords(t, tp.bus.take(), 0x121, 0x003, 0x001, 0x00a)
}
