// Package logger is the central log for the application. Entries are kept in
// a bounded history and can optionally be echoed to an io.Writer as they
// arrive.
//
// Every call to Log() and Logf() takes a Permission. Components that are
// created with a Context that embeds Permission can pass that context
// directly, which means logging can be silenced for an entire subsystem by
// the code that creates it.
package logger

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Permission implementations decide whether a log entry should be recorded.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool { return true }

type deny struct{}

func (deny) AllowLogging() bool { return false }

// Allow is a Permission that always allows logging.
var Allow Permission = allow{}

// Deny is a Permission that never allows logging.
var Deny Permission = deny{}

// the maximum number of entries kept in the central log
const maxEntries = 512

// Entry is a single record in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string

	// the number of times the entry was logged in succession
	Repeated int
}

func (e Entry) String() string {
	if e.Repeated > 0 {
		return fmt.Sprintf("%s: %s (repeat x%d)", e.Tag, e.Detail, e.Repeated+1)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Detail)
}

type central struct {
	crit    sync.Mutex
	entries []Entry
	echo    io.Writer
}

var log central

// Log adds an entry to the central log. The detail argument can be of any
// type but strings, errors and fmt.Stringer implementations are handled
// specifically.
func Log(perm Permission, tag string, detail any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	default:
		s = fmt.Sprintf("%v", d)
	}

	log.add(tag, s)
}

// Logf is the same as Log() but with a format string.
func Logf(perm Permission, tag string, detail string, args ...any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	log.add(tag, fmt.Sprintf(detail, args...))
}

func (l *central) add(tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if n := len(l.entries); n > 0 {
		last := &l.entries[n-1]
		if last.Tag == tag && last.Detail == detail {
			last.Repeated++
			last.Timestamp = time.Now()
			return
		}
	}

	e := Entry{
		Timestamp: time.Now(),
		Tag:       tag,
		Detail:    detail,
	}

	if len(l.entries) >= maxEntries {
		l.entries = append(l.entries[:0], l.entries[1:]...)
	}
	l.entries = append(l.entries, e)

	if l.echo != nil {
		fmt.Fprintln(l.echo, e.String())
	}
}

// SetEcho causes new entries to be written to output as they are logged. If
// writeRecent is true then the existing history is written first. A nil
// output stops the echo.
func SetEcho(output io.Writer, writeRecent bool) {
	log.crit.Lock()
	defer log.crit.Unlock()

	log.echo = output
	if output != nil && writeRecent {
		for _, e := range log.entries {
			fmt.Fprintln(output, e.String())
		}
	}
}

// Tail writes the most recent number of entries to output.
func Tail(output io.Writer, number int) {
	log.crit.Lock()
	defer log.crit.Unlock()

	n := max(len(log.entries)-number, 0)
	for _, e := range log.entries[n:] {
		fmt.Fprintln(output, e.String())
	}
}

// Copy returns a copy of all entries in the log.
func Copy() []Entry {
	log.crit.Lock()
	defer log.crit.Unlock()

	c := make([]Entry, len(log.entries))
	copy(c, log.entries)
	return c
}

// Clear all entries from the log.
func Clear() {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.entries = log.entries[:0]
}
