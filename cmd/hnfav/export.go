package main

import (
	"fmt"

	"github.com/fwojciec/hnfav"
	"github.com/fwojciec/hnfav/crawl"
	"github.com/fwojciec/hnfav/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	username := c.User
	if username == "" {
		username = osAccountName()
		deps.Logger.Info("HN_USER not set, using OS account name", "user", username)
	}
	if username == "" {
		err := hnfav.Errorf(hnfav.EINVALID, "no user specified and no OS account name available")
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnfav.ErrorMessage(err))
		return err
	}

	var writer *fs.Writer
	var err error
	if c.Dir != "" {
		writer, err = fs.NewWriterAt(c.Dir)
	} else {
		writer, err = fs.NewWriter("hn_threads_md_")
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnfav.ErrorMessage(err))
		return err
	}

	deps.Crawler.Documents = writer
	deps.Crawler.Links = fs.NewLinkFile("hn_comment_urls_")
	deps.Crawler.Limit = c.Limit
	deps.Crawler.Concurrency = c.Concurrency

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			// The link file path is part of the tool's contract.
			fmt.Fprintln(deps.Stdout, event.Path)
		case crawl.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s -> %s\n",
				event.Completed, event.Total, crawl.TruncateURL(event.URL, 44), event.Path)
		case crawl.ProgressFinished:
		}
	}

	result, err := deps.Crawler.Export(deps.Ctx, username, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnfav.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d of %d threads (%s) to %s\n",
		result.Saved, result.Links, crawl.FormatBytes(result.Bytes), writer.Dir())
	return nil
}
