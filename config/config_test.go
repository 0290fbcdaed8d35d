package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rapidmidiex/rmxfret/config"
	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/matcher"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(theory.DefaultStartFret, cfg.Frets.Start)
	assert.Equal(theory.DefaultVisibleFrets, cfg.Frets.Visible)
	assert.True(cfg.Frets.Fit)
	assert.Equal(":8080", cfg.Server.Addr)
	assert.Equal(150*time.Millisecond, cfg.UI.ResizeDebounce)
	assert.Equal("info", cfg.Log.Level)
}

func TestFileAndEnv(t *testing.T) {
	path := writeFile(t, "rmxfret.yaml", `
instrument: bass
key: A
frets:
  start: 5
  visible: 7
server:
  origins: ["http://localhost:3000"]
ui:
  resize_debounce: 1s
`)
	t.Setenv("RMXFRET_LOG_LEVEL", "debug")
	t.Setenv("RMXFRET_SERVER_ADDR", ":9000")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("bass", cfg.Instrument)
	assert.Equal("A", cfg.Key)
	assert.Equal(5, cfg.Frets.Start)
	assert.Equal(7, cfg.Frets.Visible)
	assert.Equal([]string{"http://localhost:3000"}, cfg.Server.Origins)
	assert.Equal(time.Second, cfg.UI.ResizeDebounce)
	assert.Equal("debug", cfg.Log.Level)
	assert.Equal(":9000", cfg.Server.Addr)
}

func TestInvalid(t *testing.T) {
	cases := map[string]string{
		"instrument": "instrument: banjo\n",
		"key":        "key: H\n",
		"frets":      "frets:\n  visible: -1\n",
		"frets cap":  "frets:\n  start: 30\n  visible: 12\n",
		"log level":  "log:\n  level: loud\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(config.New(), writeFile(t, "rmxfret.yaml", content))
			require.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestState(t *testing.T) {
	cat, err := dictionary.Default()
	require.NoError(t, err)
	s := store.New(cat, matcher.New(cat.Chords, cat.Scales))
	initial, err := s.Initial()
	require.NoError(t, err)

	t.Run("applies the configured starting point", func(t *testing.T) {
		cfg := &config.Config{
			Instrument: "bass",
			Tuning:     "Drop D",
			Key:        "a",
			Scale:      "Blues",
			Frets:      config.FretsConfig{Start: 3, Visible: 5},
		}
		st, err := cfg.State(s, initial)
		require.NoError(t, err)
		require.Equal(t, dictionary.Bass, st.Instrument)
		require.Equal(t, "Drop D", st.Tuning.Name)
		require.Equal(t, theory.Note("A"), st.Key)
		require.Equal(t, "Blues", st.Scale)
		require.Equal(t, 3, st.StartFret)
		require.Equal(t, 5, st.VisibleFrets)
	})

	t.Run("rejects names missing from the catalog", func(t *testing.T) {
		cfg := &config.Config{Scale: "Mystery", Frets: config.FretsConfig{Visible: 4}}
		st, err := cfg.State(s, initial)
		require.ErrorIs(t, err, theory.ErrInvalidName)
		require.Equal(t, initial, st)
	})
}

func TestLogger(t *testing.T) {
	level, err := config.ParseLevel("warn")
	require.NoError(t, err)
	require.Equal(t, "WARN", level.String())

	_, err = config.ParseLevel("loud")
	require.Error(t, err)
}

func TestLogOutput(t *testing.T) {
	t.Run("falls back without a file", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		out, closeLog, err := cfg.LogOutput(&buf)
		require.NoError(t, err)
		require.Same(t, &buf, out)
		require.NoError(t, closeLog())
	})

	t.Run("appends to the configured file", func(t *testing.T) {
		path := writeFile(t, "serve.log", "earlier\n")
		cfg := &config.Config{Log: config.LogConfig{Level: "info", File: path}}
		out, closeLog, err := cfg.LogOutput(os.Stderr)
		require.NoError(t, err)
		cfg.Logger(out).Info("listening", "addr", ":8080")
		require.NoError(t, closeLog())

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(got), "earlier\n")
		require.Contains(t, string(got), "msg=listening addr=:8080")
	})

	t.Run("reports an unopenable file", func(t *testing.T) {
		cfg := &config.Config{Log: config.LogConfig{File: filepath.Join(t.TempDir(), "missing", "serve.log")}}
		_, _, err := cfg.LogOutput(os.Stderr)
		require.Error(t, err)
	})
}
