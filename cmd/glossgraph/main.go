package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	glossmcp "github.com/sanonone/glossgraph/internal/mcp"
	"github.com/sanonone/glossgraph/internal/server"
	"github.com/sanonone/glossgraph/pkg/engine"
	"github.com/sanonone/glossgraph/pkg/loader"
	"github.com/sanonone/glossgraph/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML configuration file (optional)")
	httpAddr := flag.String("http-addr", ":8087", "Address and port for the REST API server (e.g. :8087)")
	dataDir := flag.String("data-dir", "", "Directory containing terms.csv and links.csv")
	termsPath := flag.String("terms", "", "Path to the terms CSV (overrides -data-dir)")
	linksPath := flag.String("links", "", "Path to the links CSV (overrides -data-dir)")
	authToken := flag.String("auth-token", "", "Static bearer token for the REST API (empty = open)")
	mcpMode := flag.Bool("mcp", false, "Serve MCP tools over stdio instead of HTTP")

	flag.Parse()

	// In MCP mode stdout belongs to the protocol, logs go to stderr anyway.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags override the configuration file.
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	if *termsPath != "" {
		cfg.Data.TermsPath = *termsPath
	}
	if *linksPath != "" {
		cfg.Data.LinksPath = *linksPath
	}
	if *authToken != "" {
		cfg.AuthToken = *authToken
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = *httpAddr
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	eng := engine.New(opts)

	reload := server.ReloadPaths{
		Terms: cfg.Data.ResolveTermsPath(),
		Links: cfg.Data.ResolveLinksPath(),
	}
	if reload.Terms == "" || reload.Links == "" {
		slog.Error("no glossary source configured, pass -data-dir or -terms/-links")
		os.Exit(1)
	}

	terms, err := loader.LoadTerms(reload.Terms)
	if err != nil {
		slog.Error("failed to load terms", "error", err)
		os.Exit(1)
	}
	relations, err := loader.LoadRelations(reload.Links)
	if err != nil {
		slog.Error("failed to load relations", "error", err)
		os.Exit(1)
	}
	if err := eng.Load(terms, relations); err != nil {
		slog.Error("failed to build graph", "error", err)
		os.Exit(1)
	}
	metrics.TermsTotal.Set(float64(eng.TermCount()))
	metrics.RelationsTotal.Set(float64(eng.RelationCount()))

	if *mcpMode {
		runMCP(eng)
		return
	}

	srv, err := server.NewServer(eng, cfg.HTTPAddr, reload, cfg.AuthToken)
	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	// Channel listening for the interrupt signal (Ctrl+C).
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Run the HTTP server in a goroutine so main can wait on the signal.
	go func() {
		if err := srv.Run(); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	<-shutdownChan

	srv.Shutdown()
}

// runMCP serves the glossary tools over stdio until the client disconnects.
func runMCP(eng *engine.Engine) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mcpServer := glossmcp.NewMCPServer(eng)
	slog.Info("MCP server running on stdio")
	if err := mcpServer.Run(ctx, &mcpsdk.StdioTransport{}); err != nil {
		slog.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
