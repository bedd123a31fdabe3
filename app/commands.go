package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/lead-comb/app/api"
	"github.com/lysyi3m/lead-comb/app/cfg"
	"github.com/lysyi3m/lead-comb/app/feed"
	"github.com/lysyi3m/lead-comb/app/lead"
	"github.com/lysyi3m/lead-comb/app/logging"
	"github.com/lysyi3m/lead-comb/app/registry"
	"github.com/lysyi3m/lead-comb/app/topic"
)

var stdout io.Writer = os.Stdout
var stdin io.Reader = os.Stdin

type inputArgs struct {
	File string `positional-arg-name:"FILE" description:"Input file, - for stdin"`
}

type serveCommand struct {
	opts *cfg.Options
}

func (cmd *serveCommand) Execute([]string) error {
	c, closeLogs, err := bootstrap(cmd.opts)
	if err != nil {
		return err
	}
	defer closeLogs.Close()

	reg, err := registry.LoadOrDefault(c.FeedsFile)
	if err != nil {
		return err
	}
	slog.Info("Feed registry loaded", "version", reg.Version(), "feeds", reg.Len())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	topics, closeTopics := newTopicLookup(ctx, c)
	defer closeTopics()

	handler := api.NewHandler(reg, topics, c.ItemCap, c.Version)
	httpServer := &http.Server{
		Addr:         ":" + c.Port,
		Handler:      api.NewServer(handler, c.APIAccessKey),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", c.Port, "version", c.Version)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var serveErr error
	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig)
	case serveErr = <-serverErrChan:
		slog.Error("Server error", "error", serveErr)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	return serveErr
}

type feedsCommand struct {
	opts *cfg.Options
	JSON bool `long:"json" description:"Print the feed list as enveloped JSON"`
}

func (cmd *feedsCommand) Execute([]string) error {
	c, closeLogs, err := bootstrap(cmd.opts)
	if err != nil {
		return err
	}
	defer closeLogs.Close()

	reg, err := registry.LoadOrDefault(c.FeedsFile)
	if err != nil {
		return err
	}

	if cmd.JSON {
		return writeJSON(lead.Wrap(reg.ListFeeds()))
	}
	return registry.WriteTable(stdout, reg)
}

type rssCommand struct {
	opts      *cfg.Options
	SourceURL string    `long:"source-url" description:"Feed URL the batch was fetched from"`
	Cap       *int      `long:"cap" description:"Maximum items to normalize, 0 for no limit (overrides --item-cap)"`
	Args      inputArgs `positional-args:"yes"`
}

func (cmd *rssCommand) Execute([]string) error {
	c, closeLogs, err := bootstrap(cmd.opts)
	if err != nil {
		return err
	}
	defer closeLogs.Close()

	data, err := readInput(cmd.Args.File)
	if err != nil {
		return err
	}

	itemCap := c.ItemCap
	if cmd.Cap != nil {
		itemCap = *cmd.Cap
	}

	items := feed.NewDecoder().Items(data)
	records := lead.NewNormalizer().AdaptRSS(items, cmd.SourceURL, itemCap)
	return writeJSON(lead.Wrap(records))
}

type aiCommand struct {
	opts *cfg.Options
	Args inputArgs `positional-args:"yes"`
}

func (cmd *aiCommand) Execute([]string) error {
	c, closeLogs, err := bootstrap(cmd.opts)
	if err != nil {
		return err
	}
	defer closeLogs.Close()

	data, err := readInput(cmd.Args.File)
	if err != nil {
		return err
	}

	ctx := context.Background()
	topics, closeTopics := newTopicLookup(ctx, c)
	defer closeTopics()

	hint := topic.Resolve(ctx, topics)
	records := lead.NewNormalizer().AdaptAICompletion(lead.DecodeCompletion(data), hint)
	return writeJSON(lead.Wrap(records))
}

func bootstrap(opts *cfg.Options) (*cfg.Cfg, io.Closer, error) {
	c, err := opts.Build()
	if err != nil {
		return nil, nil, err
	}
	return c, logging.Setup(c), nil
}

// newTopicLookup prefers a configured topic over the database lookup.
func newTopicLookup(ctx context.Context, c *cfg.Cfg) (topic.Lookup, func()) {
	if c.Topic != "" {
		return topic.Static(c.Topic), func() {}
	}
	if c.DatabaseURL == "" {
		return nil, func() {}
	}

	pg, err := topic.NewPostgres(ctx, c.DatabaseURL)
	if err != nil {
		slog.Warn("Topic lookup unavailable", "error", err)
		return nil, func() {}
	}
	return pg, pg.Close
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

func writeJSON(v any) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
