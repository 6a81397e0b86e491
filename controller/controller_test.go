package controller_test

import (
	"strings"
	"time"

	"github.com/jetsetilly/wheelwriter/controller"
	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
)

type testContext struct{}

func (testContext) AllowLogging() bool { return true }

// testBus records every word sent by the codec
type testBus struct {
	words []wheelwriter.Word
}

func (b *testBus) PutSequence(words ...wheelwriter.Word) error {
	b.words = append(b.words, words...)
	return nil
}

func (b *testBus) take() []wheelwriter.Word {
	w := b.words
	b.words = nil
	return w
}

type testDiagnostics struct {
	errorIndicator bool
	resets         int
}

func (d *testDiagnostics) Banner() string {
	return "Wheelwriter Test Banner"
}

func (d *testDiagnostics) Uptime() time.Duration {
	return 3*time.Hour + 25*time.Minute + 7*time.Second + 500*time.Millisecond
}

func (d *testDiagnostics) Port(n int) uint8 {
	return uint8(0x10 + n)
}

func (d *testDiagnostics) ErrorIndicator(on bool) {
	d.errorIndicator = on
}

func (d *testDiagnostics) Reset() {
	d.resets++
}

func (d *testDiagnostics) Variables() []controller.Variable {
	return []controller.Variable{{Name: "printwheel", Value: "0x20"}}
}

type testPrinter struct {
	*controller.Printer
	bus   *testBus
	codec *wheelwriter.Codec
	echo  *strings.Builder
	diag  *testDiagnostics
}

func newTestPrinter(autoLinefeed bool) testPrinter {
	tp := testPrinter{
		bus:  &testBus{},
		echo: &strings.Builder{},
		diag: &testDiagnostics{},
	}
	tp.codec = wheelwriter.NewCodec(testContext{}, tp.bus, nil)
	tp.Printer = controller.NewPrinter(testContext{}, tp.codec, tp.echo, tp.diag, autoLinefeed)
	return tp
}

func (tp testPrinter) send(s string) error {
	for _, c := range []byte(s) {
		if err := tp.Print(c); err != nil {
			return err
		}
	}
	return nil
}

func (tp testPrinter) takeEcho() string {
	s := tp.echo.String()
	tp.echo.Reset()
	return s
}
