// Package main provides the cogmem command-line tool: a thin front-end over
// the CogmemAi SDK for saving, searching, and managing memories from the
// terminal and from scripts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cogmemai/cogmem-go/pkg/cogmem"
	"github.com/cogmemai/cogmem-go/pkg/config"
	"github.com/cogmemai/cogmem-go/pkg/logging"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version", "-version", "--version":
		fmt.Printf("cogmem v%s\n", version)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\ninterrupted")
		cancel()
	}()

	if err := run(ctx, command, args); err != nil {
		fmt.Fprintf(os.Stderr, "cogmem: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string) error {
	switch command {
	case "save":
		return cmdSave(ctx, args)
	case "recall":
		return cmdRecall(ctx, args)
	case "extract":
		return cmdExtract(ctx, args)
	case "context":
		return cmdContext(ctx, args)
	case "list":
		return cmdList(ctx, args)
	case "update":
		return cmdUpdate(ctx, args)
	case "delete":
		return cmdDelete(ctx, args)
	case "usage":
		return cmdUsage(ctx, args)
	case "ingest":
		return cmdIngest(ctx, args)
	case "summary":
		return cmdSummary(ctx, args)
	case "export":
		return cmdExport(ctx, args)
	case "import":
		return cmdImport(ctx, args)
	case "versions":
		return cmdVersions(ctx, args)
	case "team":
		return cmdTeam(ctx, args)
	case "link":
		return cmdLink(ctx, args)
	case "links":
		return cmdLinks(ctx, args)
	case "candidates":
		return cmdCandidates(ctx, args)
	case "promote":
		return cmdPromote(ctx, args)
	case "browse":
		return cmdBrowse(ctx, args)
	case "config":
		return cmdConfig(args)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `cogmem - CogmemAi memory service CLI

Usage: cogmem <command> [options] [args]

Memory:
  save <content>       Save a memory
  recall <query>       Semantic search across memories
  extract <message>    Extract memories from a conversation exchange
  context              Load ranked project context
  list                 List memories with filters
  update               Update a memory (partial)
  delete               Delete a memory
  usage                Show usage stats and tier limits

Documents:
  ingest <files...>    Extract memories from documents (text, markdown, HTML)
  summary <text>       Save a session summary

Transfer:
  export               Export all memories as JSON
  import <file>        Bulk import memories from an export file
  versions             Show a memory's version history

Team:
  team members         List team members
  team invite          Invite a team member
  team remove          Remove a team member

Relationships:
  link                 Link two related memories
  links                Show a memory's links
  candidates           List promotion candidates
  promote              Promote a project memory to global scope

Other:
  browse               Interactive memory browser
  config               Show or update ~/.cogmem/config.yaml
  version              Print version

Run 'cogmem <command> -h' for command options. The API key comes from
-api-key, COGMEM_API_KEY, or the config file, in that order.
`)
}

// commonFlags are shared by every command that talks to the service.
type commonFlags struct {
	apiKey     string
	baseURL    string
	configPath string
	timeout    time.Duration
	debug      bool
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.apiKey, "api-key", "", "CogmemAi API key (overrides COGMEM_API_KEY and config file)")
	fs.StringVar(&f.baseURL, "base-url", "", "API base URL (overrides COGMEM_BASE_URL and config file)")
	fs.StringVar(&f.configPath, "config", "", "Path to config file (default ~/.cogmem/config.yaml)")
	fs.DurationVar(&f.timeout, "timeout", 0, "Request timeout (default 30s)")
	fs.BoolVar(&f.debug, "debug", false, "Write request debug logs to ~/.cogmem/logs")
}

// newClient resolves configuration (flags > environment > file) and builds a
// client from it.
func (f *commonFlags) newClient() (*cogmem.Client, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvironment()

	if f.apiKey != "" {
		cfg.APIKey = f.apiKey
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
	if f.timeout != 0 {
		cfg.Timeout = config.Duration{Duration: f.timeout}
	}

	opts := []cogmem.Option{}
	if cfg.BaseURL != "" {
		opts = append(opts, cogmem.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout.Duration != 0 {
		opts = append(opts, cogmem.WithTimeout(cfg.Timeout.Duration))
	}
	if f.debug {
		logger, err := logging.NewLogger("client")
		if err != nil {
			fmt.Fprintf(os.Stderr, "cogmem: debug logging degraded: %v\n", err)
		}
		opts = append(opts, cogmem.WithLogger(logger))
	}

	return cogmem.New(cfg.APIKey, opts...)
}

// projectID returns the project to use: the flag value, else the configured
// default.
func (f *commonFlags) projectID(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return ""
	}
	cfg.ApplyEnvironment()
	return cfg.ProjectID
}

// printResult pretty-prints a service response to stdout.
func printResult(result cogmem.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
