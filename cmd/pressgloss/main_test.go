package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/daide-tools/pressgloss"
	"github.com/daide-tools/pressgloss/internal/config"
)

// setup resets the globals the commands read and returns a command whose
// output is captured.
func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.Translate.Seed = 42
	toneFlag, count, jsonl, serveAddr = "", 1, false, ""

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRunTranslate(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, runTranslate(cmd, []string{"FRM (FRA) (ENG)", "(PRP (PCE (ENG FRA)))"}))
	assert.Equal(t, "Let us sign a peace treaty together.\n", out.String())
}

func TestRunTranslateTones(t *testing.T) {
	cmd, out := setup(t)
	toneFlag = "Haughty"
	require.NoError(t, runTranslate(cmd, []string{"FRM (FRA) (ENG) (PRP (PCE (ENG FRA)))"}))
	assert.True(t, strings.HasPrefix(out.String(), "The French Republic demands your attention"), out.String())
}

func TestRunTranslateBad(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, runTranslate(cmd, []string{"BORK"}))
	assert.Equal(t, pressgloss.Sentinel+"\n", out.String())
}

func TestRunRandom(t *testing.T) {
	cmd, out := setup(t)
	count = 3
	require.NoError(t, runRandom(cmd, nil))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for i := 0; i < len(lines); i += 2 {
		assert.True(t, strings.HasPrefix(lines[i], "FRM ("), lines[i])
	}
}

func TestRunRandomJSONL(t *testing.T) {
	cmd, out := setup(t)
	count, jsonl = 4, true
	require.NoError(t, runRandom(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		var p pressgloss.Pair
		require.NoError(t, json.Unmarshal([]byte(line), &p))
		assert.NotEmpty(t, p.Prompt)
		assert.True(t, pressgloss.NewUtterance(p.Completion, nil).Valid(), p.Completion)
	}
}

func TestRunRandomCount(t *testing.T) {
	cmd, _ := setup(t)
	count = 0
	assert.Error(t, runRandom(cmd, nil))
}

func TestRunParse(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, runParse(cmd, []string{"FRM ( ENG) (FRA  ITA) (PRP (PCE (FRA ITA) ))"}))
	want := "FRM (ENG) (FRA ITA) (PRP (PCE (FRA ITA)))\n" +
		"sender: ENG\n" +
		"recipients: FRA ITA\n" +
		"PRP: PRP (PCE (FRA ITA))\n" +
		"  PCE: PCE (FRA ITA)\n"
	assert.Equal(t, want, out.String())

	assert.Error(t, runParse(cmd, []string{"BORK"}))
}

func TestRunTest(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, runTest(cmd, []string{"FRM ( ENG) (FRA  ITA) (PRP (PCE (FRA ITA) ))"}))
	assert.Equal(t, "4\n", out.String())
}

func TestRunAnalyze(t *testing.T) {
	cmd, out := setup(t)
	dir := t.TempDir()
	game := `{"status": "active", "powers": {}, "message_history": {"S1901M": [
		{"sender": "ENGLAND", "recipient": "FRANCE", "daide": "FRM (ENG) (FRA) (PRP (PCE (ENG FRA)))", "tones": ""}
	]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "g.json"), []byte(game), 0o644))

	require.NoError(t, runAnalyze(cmd, []string{dir}))
	assert.Contains(t, out.String(), "Press found in 1 games.")
	assert.Contains(t, out.String(), "0 DAIDE errors found.")
}
