package hostlink_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/hostlink"
	"github.com/jetsetilly/wheelwriter/test"
)

type testContext struct{}

func (testContext) AllowLogging() bool { return true }

type testHost struct {
	io.Reader
	bytes.Buffer
}

func (h *testHost) Write(p []byte) (int, error) {
	return h.Buffer.Write(p)
}

func (h *testHost) Read(p []byte) (int, error) {
	return h.Reader.Read(p)
}

func waitDone(t *testing.T, l *hostlink.Link) {
	t.Helper()
	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatalf("link reader did not stop")
	}
}

func readAll(l *hostlink.Link) string {
	var s strings.Builder
	for {
		c, ok := l.Get()
		if !ok {
			return s.String()
		}
		s.WriteByte(c)
	}
}

func TestLink(t *testing.T) {
	h := &testHost{Reader: strings.NewReader("hello world")}
	l := hostlink.NewLink(testContext{}, h, false)
	waitDone(t, l)

	test.ExpectEquality(t, errors.Is(l.Err(), io.EOF), true)
	test.ExpectEquality(t, l.Available(), true)
	test.ExpectEquality(t, readAll(l), "hello world")
	test.ExpectEquality(t, l.Available(), false)

	n, err := l.Write([]byte("echo\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, h.String(), "echo\n")

	test.ExpectSuccess(t, l.Close())
}

// the reader waits for room in the queue rather than losing bytes
func TestLinkFlowControl(t *testing.T) {
	var data strings.Builder
	for i := range 1000 {
		data.WriteByte(byte('a' + i%26))
	}

	h := &testHost{Reader: strings.NewReader(data.String())}
	l := hostlink.NewLink(testContext{}, h, false)

	var got strings.Builder
	deadline := time.Now().Add(time.Second)
	for got.Len() < data.Len() && time.Now().Before(deadline) {
		if c, ok := l.Get(); ok {
			got.WriteByte(c)
		} else {
			time.Sleep(time.Millisecond)
		}
	}
	waitDone(t, l)

	test.ExpectEquality(t, got.String(), data.String())
	test.ExpectEquality(t, l.Overflows(), 0)
}

// in compatible mode the oldest bytes are overwritten
func TestLinkCompatible(t *testing.T) {
	h := &testHost{Reader: strings.NewReader(strings.Repeat("x", 300))}
	l := hostlink.NewLink(testContext{}, h, true)
	waitDone(t, l)

	test.ExpectEquality(t, len(readAll(l)), 256)
	test.ExpectEquality(t, l.Overflows(), 44)
}
