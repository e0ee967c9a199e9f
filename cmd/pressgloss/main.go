// Command pressgloss glosses DAIDE press into English from the command line.
//
//	pressgloss translate --tones Haughty,Urgent "FRM (ENG) (FRA ITA) (PRP (PCE (FRA ITA)))"
//	pressgloss random --count 5 --jsonl
//	pressgloss parse "FRM (ENG) (FRA) (PRP (PCE (ENG FRA)))"
//	pressgloss test "FRM ( ENG) (FRA  ITA) (PRP (PCE (FRA ITA) ))"
//	pressgloss gamelog analyze ./logs
//	pressgloss serve --addr :8080
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daide-tools/pressgloss"
	"github.com/daide-tools/pressgloss/internal/config"
	"github.com/daide-tools/pressgloss/internal/gamelog"
	"github.com/daide-tools/pressgloss/internal/web"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	// Command flags
	toneFlag  string
	count     int
	jsonl     bool
	serveAddr string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pressgloss",
	Short: "Gloss DAIDE diplomacy press into English",
	Long: `pressgloss turns DAIDE press messages into readable English.

Messages have the shape FRM (sender) (recipients) (content). Tones such as
Haughty, Friendly or Urgent colour the rendering; Objective is the plain one.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err = cfg.Logger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate [daide]",
	Short: "Gloss one DAIDE message",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTranslate,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Synthesize random press with its gloss",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

var parseCmd = &cobra.Command{
	Use:   "parse [daide]",
	Short: "Show the arrangement tree of a DAIDE message",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var testCmd = &cobra.Command{
	Use:   "test [daide]",
	Short: "Count the top-level expressions of a DAIDE message",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTest,
}

var gamelogCmd = &cobra.Command{
	Use:   "gamelog",
	Short: "Work with JSON game logs",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [dir]",
	Short: "Gloss every message in a directory of game logs and report",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var prettifyCmd = &cobra.Command{
	Use:   "prettify [in] [out]",
	Short: "Rewrite a game log as indented JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return gamelog.Prettify(args[0], args[1])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the glosser over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML config file")

	for _, c := range []*cobra.Command{translateCmd, randomCmd} {
		c.Flags().StringVarP(&toneFlag, "tones", "t", "", "Comma separated tones (default from config)")
	}
	randomCmd.Flags().IntVarP(&count, "count", "n", 1, "Number of messages")
	randomCmd.Flags().BoolVar(&jsonl, "jsonl", false, "Emit prompt/completion pairs as JSON lines")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")

	gamelogCmd.AddCommand(analyzeCmd)
	gamelogCmd.AddCommand(prettifyCmd)

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(gamelogCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGlosser() (*pressgloss.Glosser, error) {
	opts, err := cfg.Options(logger)
	if err != nil {
		return nil, err
	}
	return pressgloss.New(opts...)
}

// tones returns the --tones flag, or the configured defaults.
func tones() []pressgloss.Tone {
	if toneFlag != "" {
		return pressgloss.ParseTones(toneFlag)
	}
	return cfg.Tones()
}

// runTranslate prints the gloss of the message given as arguments.
func runTranslate(cmd *cobra.Command, args []string) error {
	g, err := newGlosser()
	if err != nil {
		return err
	}
	daide := strings.Join(args, " ")
	logger.Debug("translate", zap.String("daide", daide), zap.String("tones", toneFlag))
	fmt.Fprintln(cmd.OutOrStdout(), g.Translate(daide, tones()))
	return nil
}

func runRandom(cmd *cobra.Command, args []string) error {
	if count < 1 {
		return fmt.Errorf("--count must be positive, got %d", count)
	}
	g, err := newGlosser()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if jsonl {
		enc := json.NewEncoder(out)
		for _, p := range g.Synthesizer().Pairs(count, tones()) {
			if err := enc.Encode(p); err != nil {
				return err
			}
		}
		return nil
	}
	for i := 0; i < count; i++ {
		daide, english := g.RandomUtterance(tones())
		fmt.Fprintf(out, "%s\n%s\n", daide, english)
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := newGlosser()
	if err != nil {
		return err
	}
	daide := strings.Join(args, " ")
	u := g.Parse(daide)
	if u == nil {
		return fmt.Errorf("not of the form FRM (sender) (recipients) (content): %q", daide)
	}
	out := cmd.OutOrStdout()
	recipients := make([]string, len(u.Recipients))
	for i, p := range u.Recipients {
		recipients[i] = string(p)
	}
	fmt.Fprintf(out, "%s\n", u.DAIDE())
	fmt.Fprintf(out, "sender: %s\n", u.Sender)
	fmt.Fprintf(out, "recipients: %s\n", strings.Join(recipients, " "))
	printTree(out, u.Content, 0)
	return nil
}

func printTree(w io.Writer, a pressgloss.Arrangement, depth int) {
	fmt.Fprintf(w, "%s%s: %s\n", strings.Repeat("  ", depth), a.Operator(), pressgloss.ToDAIDE(a))
	for _, c := range a.Children() {
		printTree(w, c, depth+1)
	}
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), len(pressgloss.Normalize(strings.Join(args, " "))))
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, err := newGlosser()
	if err != nil {
		return err
	}
	rep, err := gamelog.Analyze(args[0], g)
	if err != nil {
		return err
	}
	logger.Info("analyzed game logs",
		zap.Int("games", len(rep.Games)),
		zap.Int("messages", rep.Messages),
		zap.Int("errors", rep.Errors))
	return rep.Write(cmd.OutOrStdout())
}

func runServe(cmd *cobra.Command, args []string) error {
	g, err := newGlosser()
	if err != nil {
		return err
	}
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	h := web.NewHandler(g, web.Options{
		Tones:          cfg.Tones(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	})
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, h)
}
