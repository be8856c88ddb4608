package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go.llib.dev/dsa/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/clock/timecop"
	"go.llib.dev/testcase/random"
)

func TestLogger_smoke(t *testing.T) {
	now := time.Now()
	timecop.Travel(t, now, timecop.Freeze)
	rnd := random.New(random.CryptoSeed{})

	t.Run("every level can be logged", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logging.Logger{Out: buf, Level: logging.LevelDebug}
		l.Debug("Debug")
		l.Log(logging.LevelInfo, "Info")
		l.Log(logging.LevelWarn, "Warn")
		l.Log(logging.LevelError, "Error")
		l.Log(logging.LevelFatal, "Fatal")
		assert.Contain(t, buf.String(), "Debug")
		assert.Contain(t, buf.String(), "Info")
		assert.Contain(t, buf.String(), "Warn")
		assert.Contain(t, buf.String(), "Error")
		assert.Contain(t, buf.String(), "Fatal")
	})

	t.Run("nil logger discards entries", func(t *testing.T) {
		var l *logging.Logger
		assert.NotPanic(t, func() { l.Debug("foo") })
		assert.False(t, l.IsEnabled(logging.LevelFatal))
	})

	t.Run("output is a valid JSON by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logging.Logger{Out: buf}

		expected := rnd.Repeat(3, 7, func() {
			l.Log(logging.LevelInfo, rnd.String())
		})

		dec := json.NewDecoder(buf)

		var got int
		for dec.More() {
			got++
			msg := logging.Fields{}
			assert.NoError(t, dec.Decode(&msg))
			assert.NotEmpty(t, msg)
			assert.Equal[any](t, "info", msg["level"])
			assert.Equal[any](t, now.Format(time.RFC3339), msg["timestamp"])
		}

		assert.Equal(t, expected, got)
	})

	t.Run("marshaling can be configured through the MarshalFunc", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logging.Logger{Out: buf, Separator: "|", MarshalFunc: func(a any) ([]byte, error) {
			return []byte("marshaled"), nil
		}}
		l.Log(logging.LevelInfo, "foo")
		l.Log(logging.LevelInfo, "bar")
		assert.Equal(t, "marshaled|marshaled|", buf.String())
	})

	t.Run("keys can be renamed", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logging.Logger{Out: buf, MessageKey: "msg", LevelKey: "lvl", TimestampKey: "ts"}
		l.Log(logging.LevelWarn, "foo")
		var got map[string]any
		assert.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal[any](t, "foo", got["msg"])
		assert.Equal[any](t, "warn", got["lvl"])
		assert.NotNil(t, got["ts"])
	})
}

func TestLogger_Level(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		buf = testcase.Let(s, func(t *testcase.T) *bytes.Buffer {
			return &bytes.Buffer{}
		})
		level  = testcase.LetValue[logging.Level](s, "")
		logger = testcase.Let(s, func(t *testcase.T) *logging.Logger {
			return &logging.Logger{Out: buf.Get(t), Level: level.Get(t)}
		})
	)

	s.When("level is not set", func(s *testcase.Spec) {
		level.LetValue(s, "")

		s.Then("info and above is logged", func(t *testcase.T) {
			logger.Get(t).Debug("debug-msg")
			logger.Get(t).Log(logging.LevelInfo, "info-msg")
			assert.NotContain(t, buf.Get(t).String(), "debug-msg")
			assert.Contain(t, buf.Get(t).String(), "info-msg")
		})
	})

	s.When("level is unknown", func(s *testcase.Spec) {
		level.LetValue(s, "verbose")

		s.Then("it behaves as the default info level", func(t *testcase.T) {
			assert.False(t, logger.Get(t).IsEnabled(logging.LevelDebug))
			assert.True(t, logger.Get(t).IsEnabled(logging.LevelInfo))

			logger.Get(t).Debug("debug-msg")
			logger.Get(t).Log(logging.LevelInfo, "info-msg")
			assert.NotContain(t, buf.Get(t).String(), "debug-msg")
			assert.Contain(t, buf.Get(t).String(), "info-msg")
		})
	})

	s.When("level is debug", func(s *testcase.Spec) {
		level.LetValue(s, logging.LevelDebug)

		s.Then("debug entries are logged", func(t *testcase.T) {
			logger.Get(t).Debug("debug-msg")
			assert.Contain(t, buf.Get(t).String(), "debug-msg")
		})
	})

	s.When("level is error", func(s *testcase.Spec) {
		level.LetValue(s, logging.LevelError)

		s.Then("warnings are suppressed", func(t *testcase.T) {
			logger.Get(t).Log(logging.LevelWarn, "warn-msg")
			logger.Get(t).Log(logging.LevelError, "error-msg")
			assert.NotContain(t, buf.Get(t).String(), "warn-msg")
			assert.Contain(t, buf.Get(t).String(), "error-msg")
			assert.True(t, logger.Get(t).IsEnabled(logging.LevelFatal))
			assert.False(t, logger.Get(t).IsEnabled(logging.LevelInfo))
		})
	})
}

func TestParseLevel(t *testing.T) {
	for raw, exp := range map[string]logging.Level{
		"debug": logging.LevelDebug,
		"INFO":  logging.LevelInfo,
		" w ":   logging.LevelWarn,
		"e":     logging.LevelError,
		"crit":  "",
	} {
		got, ok := logging.ParseLevel(raw)
		assert.Equal(t, exp != "", ok, assert.Message(raw))
		assert.Equal(t, exp, got)
	}
}

func TestDetails(t *testing.T) {
	l, out := logging.Stub(t)

	l.Debug("msg",
		logging.Fields{"foo": "bar", "baz": "qux"},
		logging.Field("foo", "override"),
		logging.Field("capacity", 42),
		logging.Field("nested", logging.Fields{"length": 3}),
		nil,
	)

	var got map[string]any
	assert.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out.String())), &got))
	assert.Equal[any](t, "override", got["foo"])
	assert.Equal[any](t, "qux", got["baz"])
	assert.Equal[any](t, float64(42), got["capacity"])
	assert.Equal[any](t, map[string]any{"length": float64(3)}, got["nested"])
	assert.Equal[any](t, "debug", got["level"])
}
