package printerboard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/printerboard"
	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/test"
)

type testContext struct{}

func (testContext) AllowLogging() bool { return true }

func newTestBoard(p wheelwriter.Printwheel) (*printerboard.Board, *wheelwriter.Transceiver, *wheelwriter.Codec) {
	b := printerboard.NewBoard(testContext{}, p)
	tr := wheelwriter.NewTransceiver(testContext{}, b, time.Millisecond, false)
	b.Attach(tr)
	b.PowerOn()
	cd := wheelwriter.NewCodec(testContext{}, tr, nil)
	return b, tr, cd
}

func drain(tr *wheelwriter.Transceiver) []wheelwriter.Word {
	var w []wheelwriter.Word
	for {
		v, ok := tr.Get()
		if !ok {
			return w
		}
		w = append(w, v)
	}
}

func expectWords(t *testing.T, got []wheelwriter.Word, expected ...wheelwriter.Word) {
	t.Helper()
	if !test.ExpectEquality(t, len(got), len(expected)) {
		t.Logf("got %v, expected %v", got, expected)
		return
	}
	for i := range got {
		test.ExpectEquality(t, got[i], expected[i])
	}
}

func TestPowerOn(t *testing.T) {
	_, tr, _ := newTestBoard(wheelwriter.Printwheel15P)
	expectWords(t, drain(tr), 0x121, 0x001, 0x010)
}

func TestQueryPrintwheel(t *testing.T) {
	_, tr, _ := newTestBoard(wheelwriter.Printwheel10P)
	drain(tr)

	test.ExpectSuccess(t, tr.PutSequence(wheelwriter.CommandPrefix, wheelwriter.CmdQueryPrintwheel))
	expectWords(t, drain(tr), 0x040)
}

func TestQueryModel(t *testing.T) {
	b, tr, _ := newTestBoard(wheelwriter.Printwheel12P)
	drain(tr)

	test.ExpectSuccess(t, tr.PutSequence(wheelwriter.CommandPrefix, wheelwriter.CmdQueryModel))
	expectWords(t, drain(tr), 0x026)

	b.SetModel(wheelwriter.Wheelwriter3)
	test.ExpectSuccess(t, tr.PutSequence(wheelwriter.CommandPrefix, wheelwriter.CmdQueryModel))
	expectWords(t, drain(tr), 0x006)

	// the query does not move the carriage
	x, y := b.Carriage()
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
}

func TestWarm(t *testing.T) {
	b := printerboard.NewBoard(testContext{}, wheelwriter.Printwheel15P)
	tr := wheelwriter.NewTransceiver(testContext{}, b, time.Millisecond, false)
	b.Attach(tr)
	b.Warm()

	// nothing is reported but the printwheel query is answered
	test.ExpectEquality(t, tr.Available(), false)
	test.ExpectSuccess(t, tr.PutSequence(wheelwriter.CommandPrefix, wheelwriter.CmdQueryPrintwheel))
	expectWords(t, drain(tr), 0x010)
}

func TestPrinting(t *testing.T) {
	b, tr, cd := newTestBoard(wheelwriter.Printwheel12P)

	for _, c := range []byte("ab c") {
		test.ExpectSuccess(t, cd.PrintLetter(c, 0))
	}
	test.ExpectSuccess(t, cd.CarriageReturn())
	test.ExpectSuccess(t, cd.Linefeed())
	test.ExpectSuccess(t, cd.PrintLetter('d', wheelwriter.Bold|wheelwriter.ContinuousUnderline))
	test.ExpectSuccess(t, cd.PrintLetter(' ', wheelwriter.ContinuousUnderline))
	test.ExpectSuccess(t, cd.PrintLetter('e', 0))

	test.ExpectEquality(t, b.Text(), "ab c\nd_e")

	x, y := b.Carriage()
	test.ExpectEquality(t, x, 30)
	test.ExpectEquality(t, y, 16)

	// d is struck twice for bold and once more for the underline
	n := 0
	for _, im := range b.Impressions() {
		if im.Y == 16 && im.X < 10 {
			n++
		}
	}
	test.ExpectEquality(t, n, 3)

	// every acknowledge was consumed by the transceiver. the only words
	// waiting are from power on
	test.ExpectEquality(t, len(drain(tr)), 3)
	test.ExpectEquality(t, tr.Overflows(), 0)
}

func TestErase(t *testing.T) {
	b, _, cd := newTestBoard(wheelwriter.Printwheel12P)

	for _, c := range []byte("abc") {
		test.ExpectSuccess(t, cd.PrintLetter(c, 0))
	}
	test.ExpectSuccess(t, cd.EraseLetter('c'))
	test.ExpectSuccess(t, cd.EraseLetter('b'))
	test.ExpectEquality(t, b.Text(), "a")

	x, _ := b.Carriage()
	test.ExpectEquality(t, x, cd.Position())

	test.ExpectSuccess(t, cd.PrintLetter('x', 0))
	test.ExpectEquality(t, b.Text(), "ax")
}

func TestPaperMovement(t *testing.T) {
	b, _, cd := newTestBoard(wheelwriter.Printwheel12P)

	test.ExpectSuccess(t, cd.Linefeed())
	test.ExpectSuccess(t, cd.PaperUp())
	test.ExpectSuccess(t, cd.MicroUp())
	_, y := b.Carriage()
	test.ExpectEquality(t, y, 26)

	test.ExpectSuccess(t, cd.ReverseLinefeed())
	test.ExpectSuccess(t, cd.ReverseLinefeed())
	test.ExpectSuccess(t, cd.MicroDown())
	_, y = b.Carriage()
	test.ExpectEquality(t, y, 0)

	test.ExpectSuccess(t, cd.Spin())
	test.ExpectEquality(t, b.Spins(), 1)
}

func TestPowerOff(t *testing.T) {
	b, tr, cd := newTestBoard(wheelwriter.Printwheel12P)
	b.PowerOff()

	err := cd.PrintLetter('a', 0)
	test.ExpectEquality(t, errors.Is(err, wheelwriter.ErrTimeout), true)
	test.ExpectEquality(t, b.Text(), "")

	// nothing from the typewriter keyboard either
	drain(tr)
	b.Strike('a')
	test.ExpectEquality(t, tr.Available(), false)
}

func TestStrike(t *testing.T) {
	b, tr, cd := newTestBoard(wheelwriter.Printwheel10P)
	drain(tr)

	// each strike is read before the next one is typed, as happens when the
	// firmware loop keeps up with the typist
	var words []wheelwriter.Word
	for _, c := range []byte("h i") {
		b.Strike(c)
		words = append(words, drain(tr)...)
	}
	test.ExpectEquality(t, b.Text(), "h i")
	test.ExpectEquality(t, tr.Overflows(), 0)

	expectWords(t, words,
		0x121, 0x003, 0x008, 0x00c,
		0x121, 0x006, 0x080, 0x00c,
		0x121, 0x003, 0x05d, 0x00c)

	// the codec does not know about carriage movement from the typewriter
	// keyboard
	test.ExpectEquality(t, cd.Position(), 0)
}

func TestInsertPaper(t *testing.T) {
	b, _, cd := newTestBoard(wheelwriter.Printwheel12P)
	test.ExpectSuccess(t, cd.PrintLetter('a', 0))
	b.InsertPaper()
	test.ExpectEquality(t, b.Text(), "")
	test.ExpectEquality(t, len(b.Impressions()), 0)
}
