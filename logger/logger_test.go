package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/wheelwriter/logger"
	"github.com/jetsetilly/wheelwriter/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Log(logger.Deny, "test", "this should not appear")
	logger.Logf(logger.Allow, "test", "value %d", 10)

	var b strings.Builder
	logger.Tail(&b, 10)
	test.ExpectEquality(t, b.String(), "test: this is a test\ntest: value 10\n")

	b.Reset()
	logger.Tail(&b, 1)
	test.ExpectEquality(t, b.String(), "test: value 10\n")
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "ps2", "parity error")
	logger.Log(logger.Allow, "ps2", "parity error")
	logger.Log(logger.Allow, "ps2", "parity error")

	entries := logger.Copy()
	test.DemandEquality(t, len(entries), 1)
	test.ExpectEquality(t, entries[0].Repeated, 2)
	test.ExpectEquality(t, entries[0].String(), "ps2: parity error (repeat x3)")
}

func TestEcho(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "before", "echo")

	var b strings.Builder
	logger.SetEcho(&b, true)
	defer logger.SetEcho(nil, false)

	logger.Log(logger.Allow, "after", "echo")
	test.ExpectEquality(t, b.String(), "before: echo\nafter: echo\n")
}
