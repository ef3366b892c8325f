package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hnfav/crawl"
	"github.com/fwojciec/hnfav/goquery"
	hnfavhttp "github.com/fwojciec/hnfav/http"
	hnfavslog "github.com/fwojciec/hnfav/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Optional .env file for HN_USER and friends.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hnfav"),
		kong.Description("Export a Hacker News user's favorited threads as markdown documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	fetcher := hnfavslog.NewLoggingFetcher(hnfavhttp.NewFetcher(), logger)
	defer fetcher.Close()

	deps.Logger = logger
	deps.Crawler = &crawl.Crawler{
		Fetcher:  fetcher,
		Listings: goquery.NewListingParser(),
		Threads:  goquery.NewThreadParser(),
		Logger:   logger,
	}

	return kongCtx.Run(deps)
}

// osAccountName returns the invoking OS account name, used when the
// username is not configured explicitly.
func osAccountName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
