package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"textsum/internal/config"
	"textsum/internal/loader"
	"textsum/internal/logging"
	"textsum/internal/service"
	"textsum/internal/stopwords"
	"textsum/internal/summarizer"
	"textsum/internal/tui"
)

type rootOptions struct {
	configPath string
	topN       int
	scoring    string
	print      bool
	stdin      bool
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:           "textsum [files...]",
		Short:         "Extractive summaries by word frequency",
		Long:          "textsum picks the most informative sentences of a document and prints them in their original order.\nWithout --print it opens an interactive editor.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (default ./config.yaml or ~/.config/textsum/config.yaml)")
	rootCmd.Flags().IntVarP(&opts.topN, "top", "n", 0, "Number of sentences in the summary (default from config)")
	rootCmd.Flags().StringVar(&opts.scoring, "scoring", "", "Sentence scoring: raw or mean (default from config)")
	rootCmd.Flags().BoolVar(&opts.print, "print", false, "Print summaries instead of opening the interactive editor")
	rootCmd.Flags().BoolVar(&opts.stdin, "stdin", false, "Read the document from standard input")

	return rootCmd
}

func run(cmd *cobra.Command, opts rootOptions, args []string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("top") {
		cfg.Summarizer.TopN = opts.topN
	}
	if cmd.Flags().Changed("scoring") {
		cfg.Summarizer.Scoring = opts.scoring
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	stdin := cmd.InOrStdin()
	stdout := cmd.OutOrStdout()
	readStdin := opts.stdin || (len(args) == 0 && !isTerminal(stdin))
	interactive := !opts.print && !readStdin && isTerminal(stdout)

	logger, err := newLogger(cfg.Log, interactive)
	if err != nil {
		return err
	}
	defer logger.Close()

	sum, err := newSummarizer(cfg.Summarizer)
	if err != nil {
		return err
	}
	svc := service.NewSummaryService(loader.New(), sum, logger.Logger)
	topN := cfg.Summarizer.TopN

	if readStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		s, err := svc.SummarizeText(string(data), topN)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, s.String())
		return nil
	}

	var results []service.FileSummary
	if len(args) > 0 {
		results, err = svc.SummarizeFiles(args, topN)
		if err != nil {
			return err
		}
	}

	if !interactive {
		if len(results) == 0 {
			return fmt.Errorf("no input: pass files, pipe text, or use --stdin")
		}
		printSummaries(stdout, results)
		return nil
	}

	var text, summary string
	if len(results) > 0 {
		text = results[0].Document.Content
		summary = results[0].Summary.String()
	}
	m := tui.New(svc, text, summary, topN)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}

func loadConfig(path string) (*config.AppConfig, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, _, err := config.LoadDefault()
	return cfg, err
}

// newLogger keeps stderr quiet while the TUI owns the terminal unless a log
// file is configured.
func newLogger(cfg config.LogConfig, interactive bool) (*logging.Logger, error) {
	if interactive && cfg.File == "" {
		return logging.Discard(), nil
	}
	return logging.New(cfg)
}

func newSummarizer(cfg config.SummarizerConfig) (*summarizer.FrequencySummarizer, error) {
	scoring, err := summarizer.ParseScoring(cfg.Scoring)
	if err != nil {
		return nil, err
	}
	stop := stopwords.Default().With(cfg.Stopwords...)
	if cfg.ReplaceStopwords {
		stop = stopwords.New(cfg.Stopwords...)
	}
	opts := summarizer.DefaultOptions()
	opts.Stopwords = stop
	opts.MinTokenLength = cfg.MinTokenLength
	opts.Scoring = scoring
	return summarizer.NewFrequencySummarizer(opts)
}

func printSummaries(w io.Writer, results []service.FileSummary) {
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s\n", r.Document.Path)
		}
		fmt.Fprintln(w, r.Summary.String())
	}
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
