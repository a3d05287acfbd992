package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tschuyebuhl/wordfreq/data"
	"github.com/tschuyebuhl/wordfreq/reader"
	"github.com/tschuyebuhl/wordfreq/report"
	"github.com/tschuyebuhl/wordfreq/words"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	top             int
	html            bool
	metricsTextfile string
	metricsAddr     string
	verbose         bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], reader.OSOpener{}, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, opener data.Opener, stdout, stderr io.Writer) int {
	var opts options
	code := exitOK

	cmd := &cobra.Command{
		Use:           "wordfreq <file>",
		Short:         "Get the word frequency in a text file.",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.top < 0 {
				return fmt.Errorf("--top must not be negative, got %d", opts.top)
			}
			setupLogging(stderr, opts.verbose)
			code = analyze(cmd.Context(), opener, args[0], opts, stdout, stderr)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.top, "top", 0, "number of top words to show (0 shows all)")
	flags.BoolVar(&opts.html, "html", false, "count only the text content of an HTML file")
	flags.StringVar(&opts.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics of the run to this file")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address until interrupted")
	flags.BoolVar(&opts.verbose, "verbose", false, "log debug messages to stderr")

	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
	return code
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func analyze(ctx context.Context, opener data.Opener, path string, opts options, stdout, stderr io.Writer) int {
	name := filepath.Clean(path)

	if !reader.IsFile(opener, path) {
		fmt.Fprintf(stdout, "%s does not exist!\n", name)
		return exitFailure
	}

	doc, err := reader.ReadContents(opener, path)
	if errors.Is(err, reader.NotFound) {
		fmt.Fprintf(stdout, "%s does not exist!\n", name)
		return exitFailure
	}
	if err != nil {
		slog.Error("error reading file", "path", path, "error", err)
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	if opts.html {
		doc = data.Document(reader.ExtractHTMLText(strings.NewReader(string(doc))))
	}

	tokens := words.Tokenize(doc)
	wordCounts := words.Count(tokens)
	slog.Debug("counted words", "path", path, "tokens", len(tokens), "distinct", len(wordCounts))

	if err := report.Print(stdout, wordCounts, opts.top); err != nil {
		slog.Error("error printing report", "error", err)
		return exitFailure
	}

	if opts.metricsTextfile == "" && opts.metricsAddr == "" {
		return exitOK
	}

	m := newRunMetrics()
	m.Update(name, len(tokens), wordCounts)

	if opts.metricsTextfile != "" {
		if err := m.WriteTextfile(opts.metricsTextfile); err != nil {
			slog.Error("error writing metrics", "path", opts.metricsTextfile, "error", err)
			fmt.Fprintln(stderr, err)
			return exitFailure
		}
	}

	if opts.metricsAddr != "" {
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := m.Serve(ctx, opts.metricsAddr); err != nil {
			slog.Error("error serving metrics", "addr", opts.metricsAddr, "error", err)
			fmt.Fprintln(stderr, err)
			return exitFailure
		}
	}

	return exitOK
}
