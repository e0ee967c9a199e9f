package gamelog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daide-tools/pressgloss"
)

const sampleGame = `{
  "status": "completed",
  "victory": ["FRANCE"],
  "outcome": ["S1905M", "FRANCE"],
  "powers": {
    "ENGLAND": {"controller": {"S1901M": "alice", "F1901M": "Dummy"}},
    "FRANCE": {"controller": {"S1901M": "bob"}},
    "ITALY": {"controller": {"S1901M": "dummy "}}
  },
  "order_history": {"S1901M": {}, "F1901M": {}, "W1901A": {}},
  "message_history": {
    "S1901M": [
      {"sender": "ENGLAND", "recipient": "FRANCE", "daide": "FRM (ENG) (FRA) (PRP (PCE (ENG FRA)))", "tones": ""},
      {"sender": "FRANCE", "recipient": "ENGLAND", "daide": "FRM (FRA) (ENG) (YES (PRP (PCE (ENG FRA))))", "tones": "Haughty,Urgent"}
    ],
    "F1901M": [
      {"sender": "ENGLAND", "recipient": "FRANCE", "daide": "BORK BORK BORK", "tones": "Friendly"}
    ]
  }
}`

func writeLogs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game1.json"), []byte(sampleGame), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quiet.json"), []byte(`{"status": "active", "powers": {}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a log"), 0o644))
	return dir
}

func TestAnalyze(t *testing.T) {
	g, err := pressgloss.New()
	require.NoError(t, err)

	rep, err := Analyze(writeLogs(t), g)
	require.NoError(t, err)

	assert.Len(t, rep.Games, 2)
	assert.Len(t, rep.PressGames, 1)
	assert.Equal(t, 3, rep.Messages)
	assert.Equal(t, 1, rep.Errors)

	wantTones := []Count{{"Friendly", 1}, {"Haughty", 1}, {"Objective", 1}, {"Urgent", 1}}
	if diff := cmp.Diff(wantTones, rep.Tones); diff != "" {
		t.Errorf("tones (-want +got):\n%s", diff)
	}
	wantOps := []Count{{"PRP", 2}, {"PCE", 1}, {"YES", 1}}
	if diff := cmp.Diff(wantOps, rep.Operators); diff != "" {
		t.Errorf("operators (-want +got):\n%s", diff)
	}

	var game GameSummary
	for _, s := range rep.Games {
		if strings.HasSuffix(s.Path, "game1.json") {
			game = s
		}
	}
	assert.True(t, game.Completed)
	assert.Equal(t, 3, game.Seasons)
	assert.Equal(t, 3, game.Messages)
	assert.Equal(t, map[string]string{"ENGLAND": "Hybrid", "FRANCE": "All Human", "ITALY": "Dummy"}, game.Control)
	assert.Equal(t, []string{"ENGLAND", "ITALY"}, game.Controllers["dummy"])

	var out bytes.Buffer
	require.NoError(t, rep.Write(&out))
	t.Logf("report:\n%s", out.String())
	assert.Contains(t, out.String(), "Press found in 1 games.")
	assert.Contains(t, out.String(), "1 DAIDE errors found.")
	assert.Contains(t, out.String(), "  controllers:\n    alice: ENGLAND\n    bob: FRANCE\n    dummy: ENGLAND ITALY\n")
}

func TestAnalyzeBadLog(t *testing.T) {
	g, err := pressgloss.New()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	_, err = Analyze(dir, g)
	assert.Error(t, err)
}

func TestPrettify(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"a":[1,2],"b":{"c":"d"}}`), 0o644))
	require.NoError(t, Prettify(in, out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want := "{\n  \"a\": [\n    1,\n    2\n  ],\n  \"b\": {\n    \"c\": \"d\"\n  }\n}\n"
	assert.Equal(t, want, string(got))

	assert.Error(t, Prettify(filepath.Join(dir, "missing.json"), out))
}
