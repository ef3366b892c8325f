package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/hnfav/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Export ExportCmd `cmd:"" default:"withargs" help:"Export a user's favorited threads as markdown"`
}

// ExportCmd is the "export" command, also the default.
type ExportCmd struct {
	User        string `arg:"" optional:"" env:"HN_USER" help:"Hacker News username (defaults to $HN_USER, then the OS account name)"`
	Limit       int    `short:"l" default:"10" help:"Maximum number of favorite links to export"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent thread fetch limit (1 = sequential)"`
	Dir         string `short:"d" help:"Write documents into this directory instead of a fresh temp directory"`
}
