package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wataruto/searcher"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))

	require.NoError(t, err)
	require.Equal(t, searcher.DefaultConfig(), cfg.Search)
	require.Equal(t, 10, cfg.Experiment.Games)
	require.Equal(t, 18, cfg.Experiment.BoardSize)
}

func TestParseOverrides(t *testing.T) {
	doc := []byte(`
search:
  timeLimitSeconds: 2.5
  maxSimulations: 1000
  tacticalRollout: false
  winCheckLimit: 15
experiment:
  games: 3
  boardSize: 9
`)

	cfg, err := Parse(doc)

	require.NoError(t, err)
	require.Equal(t, 2.5, cfg.Search.TimeLimitSeconds)
	require.Equal(t, 1000, cfg.Search.MaxSimulations)
	require.False(t, cfg.Search.TacticalRollout)
	require.Equal(t, 15, cfg.Search.WinCheckLimit)
	require.Equal(t, searcher.DefaultThreatCheckLimit, cfg.Search.ThreatCheckLimit,
		"Absent fields keep their defaults")
	require.Equal(t, 3, cfg.Experiment.Games)
	require.Equal(t, 9, cfg.Experiment.BoardSize)
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse([]byte("search: ["))
	require.Error(t, err)

	_, err = Parse([]byte("experiment:\n  boardSize: 1\n"))
	require.Error(t, err, "Degenerate board size is refused")
}
