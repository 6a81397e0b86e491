package hostlink

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Hangup is the byte typed at the terminal to end the session (control-]).
const Hangup = 0x1d

// newlineWriter turns a lone LF into CR LF. The terminal in raw mode does not
// return the cursor on a linefeed
type newlineWriter struct {
	w    io.Writer
	prev byte
}

func (nw *newlineWriter) Write(p []byte) (int, error) {
	out := make([]byte, 0, len(p)+8)
	for _, c := range p {
		if c == '\n' && nw.prev != '\r' {
			out = append(out, '\r')
		}
		out = append(out, c)
		nw.prev = c
	}
	if _, err := nw.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

type terminal struct {
	fd    int
	state *term.State
}

func (t *terminal) Close() error {
	if t.state == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("hostlink: restore terminal: %w", err)
	}
	return nil
}

// OpenTerminal uses stdin and stdout as the link. If stdin is a terminal it
// is put into raw mode so that each key reaches the firmware as it is typed,
// and typing control-] ends the session.
func OpenTerminal(ctx Context, compatible bool) (*Link, error) {
	t := &terminal{fd: int(os.Stdin.Fd())}

	var w io.Writer = os.Stdout
	var hangup uint8

	if term.IsTerminal(t.fd) {
		var err error
		t.state, err = term.MakeRaw(t.fd)
		if err != nil {
			return nil, fmt.Errorf("hostlink: setting stdin to raw: %w", err)
		}
		w = &newlineWriter{w: os.Stdout}
		hangup = Hangup
	}

	l := newLink(ctx, os.Stdin, w, compatible)
	l.closer = t
	l.hangup = hangup
	l.start()
	return l, nil
}
