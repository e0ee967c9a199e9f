// Package gamelog surveys directories of JSON game logs: it glosses every
// press message it finds and tallies tones, DAIDE operators and failed
// glosses.
package gamelog

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"

	"github.com/daide-tools/pressgloss"
)

// Message is one logged press message.
type Message struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Daide     string `json:"daide"`
	// Tones is a comma separated list; empty means Objective.
	Tones string `json:"tones"`
}

// PowerInfo records who controlled a power, keyed by phase.
type PowerInfo struct {
	Controller map[string]string `json:"controller"`
}

// Game is the part of a game log the survey reads.
type Game struct {
	Status         string                     `json:"status"`
	Victory        any                        `json:"victory"`
	Outcome        any                        `json:"outcome"`
	Powers         map[string]PowerInfo       `json:"powers"`
	MessageHistory map[string][]Message       `json:"message_history"`
	OrderHistory   map[string]json.RawMessage `json:"order_history"`
}

// Count is one tallied name.
type Count struct {
	Name string
	N    int
}

// counter tallies names in name order.
type counter struct {
	m *treemap.Map
}

func newCounter() *counter {
	return &counter{m: treemap.NewWithStringComparator()}
}

func (c *counter) add(name string) {
	n := 0
	if v, found := c.m.Get(name); found {
		n = v.(int)
	}
	c.m.Put(name, n+1)
}

// mostCommon returns the counts in descending order, ties by name.
func (c *counter) mostCommon() []Count {
	out := make([]Count, 0, c.m.Size())
	it := c.m.Iterator()
	for it.Next() {
		out = append(out, Count{Name: it.Key().(string), N: it.Value().(int)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].N > out[j].N })
	return out
}

// GameSummary describes one log file.
type GameSummary struct {
	Path      string
	Completed bool
	Victory   string
	Outcome   string
	Seasons   int
	Messages  int
	// Control classifies each power: "Dummy", "Hybrid" or "All Human".
	Control map[string]string
	// Controllers maps a normalized controller name to the powers it played,
	// sorted.
	Controllers map[string][]string
}

// Report is the result of a survey.
type Report struct {
	Games []GameSummary
	// PressGames lists the logs that contain at least one message.
	PressGames []string
	Messages   int
	// Errors counts messages whose gloss was the sentinel.
	Errors    int
	Tones     []Count
	Operators []Count
}

// Analyze walks dir for .json game logs and glosses every message with g.
func Analyze(dir string, g *pressgloss.Glosser) (*Report, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "resolve log directory")
	}

	rep := &Report{}
	tones, ops := newCounter(), newCounter()

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		game, err := readGame(path)
		if err != nil {
			return err
		}
		sum := summarize(path, game)

		for _, key := range sortedKeys(game.MessageHistory) {
			for _, m := range game.MessageHistory[key] {
				list := m.Tones
				if list == "" {
					list = string(pressgloss.ToneObjective)
				}
				ts := pressgloss.ParseTones(list)
				for _, t := range ts {
					tones.add(string(t))
				}
				rep.Messages++
				sum.Messages++
				if strings.Contains(g.Translate(m.Daide, ts), pressgloss.Sentinel) {
					rep.Errors++
				}
				if u := g.Parse(m.Daide); u != nil {
					ops.add(string(u.Content.Operator()))
					if kids := u.Content.Children(); len(kids) > 0 {
						ops.add(string(kids[0].Operator()))
					}
				}
			}
		}
		if sum.Messages > 0 {
			rep.PressGames = append(rep.PressGames, path)
		}
		rep.Games = append(rep.Games, sum)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", dir)
	}

	rep.Tones = tones.mostCommon()
	rep.Operators = ops.mostCommon()
	return rep, nil
}

func readGame(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read game log")
	}
	var game Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return &game, nil
}

func summarize(path string, game *Game) GameSummary {
	sum := GameSummary{
		Path:        path,
		Completed:   game.Status == "completed",
		Seasons:     len(game.OrderHistory),
		Control:     make(map[string]string, len(game.Powers)),
		Controllers: make(map[string][]string),
	}
	if sum.Completed {
		sum.Victory = fmt.Sprint(game.Victory)
		sum.Outcome = fmt.Sprint(game.Outcome)
	}

	played := treemap.NewWithStringComparator()
	for power, info := range game.Powers {
		dummies := 0
		for _, name := range info.Controller {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "dummy" {
				dummies++
			}
			set, found := played.Get(name)
			if !found {
				set = treeset.NewWithStringComparator()
				played.Put(name, set)
			}
			set.(*treeset.Set).Add(power)
		}
		switch {
		case dummies > 0 && dummies == len(info.Controller):
			sum.Control[power] = "Dummy"
		case dummies > 0:
			sum.Control[power] = "Hybrid"
		default:
			sum.Control[power] = "All Human"
		}
	}
	it := played.Iterator()
	for it.Next() {
		var powers []string
		for _, v := range it.Value().(*treeset.Set).Values() {
			powers = append(powers, v.(string))
		}
		sum.Controllers[it.Key().(string)] = powers
	}
	return sum
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Write prints the report in the layout of the survey command.
func (r *Report) Write(w io.Writer) error {
	var b strings.Builder
	for _, g := range r.Games {
		if g.Completed {
			fmt.Fprintf(&b, "%s completed\n  won by %s\n  outcome: %s\n", g.Path, g.Victory, g.Outcome)
		} else {
			fmt.Fprintf(&b, "%s in progress\n", g.Path)
		}
		for _, power := range sortedKeys(g.Control) {
			fmt.Fprintf(&b, "%s:\n  %s\n", power, g.Control[power])
		}
		if len(g.Controllers) > 0 {
			b.WriteString("  controllers:\n")
			for _, name := range sortedKeys(g.Controllers) {
				fmt.Fprintf(&b, "    %s: %s\n", name, strings.Join(g.Controllers[name], " "))
			}
		}
		fmt.Fprintf(&b, "  %d seasons played\n", g.Seasons)
	}
	fmt.Fprintf(&b, "Press found in %d games.\n", len(r.PressGames))
	fmt.Fprintf(&b, "  %d messages found.\n", r.Messages)
	fmt.Fprintf(&b, "  %d DAIDE errors found.\n", r.Errors)
	fmt.Fprintf(&b, "Tones: %s\n", formatCounts(r.Tones))
	fmt.Fprintf(&b, "Operators: %s\n", formatCounts(r.Operators))
	_, err := io.WriteString(w, b.String())
	return err
}

func formatCounts(counts []Count) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s=%d", c.Name, c.N)
	}
	return strings.Join(parts, " ")
}

// Prettify rewrites the JSON game log at in, indented by two spaces, to out.
func Prettify(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "read game log")
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrapf(err, "parse %s", in)
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode game log")
	}
	if err := os.WriteFile(out, append(pretty, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", out)
	}
	return nil
}
