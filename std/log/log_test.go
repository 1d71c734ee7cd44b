package log_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/log"
	tu "github.com/weburi/weburi/std/utils/testutils"
)

type tag string

func (t tag) String() string { return "<" + string(t) + ">" }

func TestParseLevel(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, log.LevelTrace, tu.NoErr(log.ParseLevel("TRACE")))
	require.Equal(t, log.LevelWarn, tu.NoErr(log.ParseLevel("warn")))
	tu.Err(log.ParseLevel("LOUD"))

	var lvl log.Level
	require.NoError(t, lvl.UnmarshalText([]byte("error")))
	require.Equal(t, log.LevelError, lvl)
	require.Equal(t, "ERROR", lvl.String())
}

func TestTextLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	l := log.New(buf, false, log.LevelInfo)

	l.Debug(nil, "hidden")
	require.Zero(t, buf.Len())

	l.Info(tag("http://a"), "parsed", "valid", true)
	line := buf.String()
	require.Contains(t, line, "level=INFO")
	require.Contains(t, line, `tag=<http://a>`)
	require.Contains(t, line, "valid=true")

	require.Equal(t, log.LevelInfo, l.SetLevel(log.LevelTrace))
	require.True(t, l.Enabled(log.LevelTrace))
}

func TestJsonLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	l := log.New(buf, true, log.LevelWarn)
	l.Warn("uri", "warned", "count", 2)

	rec := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	require.Equal(t, "WARN", rec["level"])
	require.Equal(t, "uri", rec["tag"])
	require.Equal(t, float64(2), rec["count"])
}

func TestSetDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := log.SetDefault(log.New(buf, false, log.LevelTrace))
	defer log.SetDefault(prev)

	require.True(t, log.HasTrace())
	log.Trace(nil, "step")
	require.Contains(t, buf.String(), "level=TRACE")
}
