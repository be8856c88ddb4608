// Package logging provides tooling for structured logging.
package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"
)

type Logger struct {
	Out io.Writer

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// Level is the logging level.
	// The default Level is LevelInfo, an unknown Level is treated as the default.
	Level Level
	// Separator is used to seperate log entries from each other.
	// By default, it is the current operation system's file line seperator.
	Separator string
	// MarshalFunc is used to serialise the logging message event.
	// When nil it defaults to JSON format.
	MarshalFunc func(any) ([]byte, error)

	outLock sync.Mutex
}

func (l *Logger) Debug(msg string, ds ...Detail) {
	l.Log(LevelDebug, msg, ds...)
}

// Log writes a log entry when the level is enabled.
// A nil *Logger discards every entry.
func (l *Logger) Log(level Level, msg string, ds ...Detail) {
	if l == nil {
		return
	}
	if !l.IsEnabled(level) {
		return
	}
	_ = l.logTo(l.writer(), level, msg, ds)
}

// IsEnabled reports whether an entry with the given level would be written.
// Use it to skip building expensive details.
func (l *Logger) IsEnabled(level Level) bool {
	if l == nil {
		return false
	}
	return isLevelEnabled(l.getLevel(), level)
}

func (l *Logger) logTo(out io.Writer, level Level, msg string, ds []Detail) error {
	var (
		e       = l.toEntry(level, msg, ds)
		bs, err = l.marshalFunc()(e)
	)
	if err != nil {
		return err
	}
	_, err = out.Write(append(bs, []byte(l.separator())...))
	return err
}

func (l *Logger) toEntry(level Level, msg string, ds []Detail) entry {
	e := make(entry)
	for _, d := range ds {
		if d == nil {
			continue
		}
		d.addTo(e)
	}
	e[coalesce(l.LevelKey, "level")] = level
	e[coalesce(l.MessageKey, "message")] = msg
	e[coalesce(l.TimestampKey, "timestamp")] = clock.Now().Format(time.RFC3339)
	return e
}

type syncwriter struct {
	Writer io.Writer
	Locker sync.Locker
}

func (w *syncwriter) Write(p []byte) (n int, err error) {
	w.Locker.Lock()
	defer w.Locker.Unlock()
	return w.Writer.Write(p)
}

func (l *Logger) writer() io.Writer {
	var out io.Writer = os.Stdout
	if l.Out != nil {
		out = l.Out
	}
	return &syncwriter{
		Writer: out,
		Locker: &l.outLock,
	}
}

func (l *Logger) marshalFunc() func(any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	if os.PathSeparator == '\\' {
		return "\r\n"
	}
	return "\n"
}

func (l *Logger) getLevel() Level {
	if len(l.Level) == 0 {
		return defaultLevel
	}
	return l.Level
}

func coalesce(key, defaultKey string) string {
	if key != "" {
		return key
	}
	return defaultKey
}

type testingTB interface {
	Helper()
}

// Stub returns a debug level Logger and the buffer where its logging output will be recorded.
func Stub(tb testingTB) (*Logger, StubOutput) {
	tb.Helper()
	buf := &stubOutput{}
	l := &Logger{
		Level: LevelDebug,
		Out:   buf,
	}
	return l, buf
}

type StubOutput interface {
	io.Reader
	String() string
	Bytes() []byte
}

type stubOutput struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (o *stubOutput) Read(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Read(p)
}

func (o *stubOutput) Write(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Write(p)
}

func (o *stubOutput) String() string {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.String()
}

func (o *stubOutput) Bytes() []byte {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Bytes()
}
