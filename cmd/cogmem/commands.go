package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cogmemai/cogmem-go/pkg/browse"
	"github.com/cogmemai/cogmem-go/pkg/cogmem"
	"github.com/cogmemai/cogmem-go/pkg/config"
)

func cmdSave(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	memoryType := fs.String("type", "", "Memory type (architecture, decision, bug, pattern, ...)")
	category := fs.String("category", "", "Category (frontend, backend, database, devops, ...)")
	subject := fs.String("subject", "", "What the memory is about")
	importance := fs.Int("importance", 0, "Importance 1-10 (default 5)")
	scope := fs.String("scope", "", "project or global")
	project := fs.String("project", "", "Project identifier")
	fs.Parse(args)

	content := strings.Join(fs.Args(), " ")
	if content == "" {
		return fmt.Errorf("save: content is required")
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.SaveMemory(ctx, content, &cogmem.SaveMemoryOptions{
		MemoryType: *memoryType,
		Category:   *category,
		Subject:    *subject,
		Importance: *importance,
		Scope:      cogmem.Scope(*scope),
		ProjectID:  common.projectID(*project),
	})
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdRecall(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("recall", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	limit := fs.Int("limit", 0, "Max results 1-20 (default 10)")
	memoryType := fs.String("type", "", "Filter by memory type")
	scope := fs.String("scope", "", "global, project, or all")
	fs.Parse(args)

	query := strings.Join(fs.Args(), " ")
	if query == "" {
		return fmt.Errorf("recall: query is required")
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.RecallMemories(ctx, query, &cogmem.RecallOptions{
		Limit:      *limit,
		MemoryType: *memoryType,
		Scope:      cogmem.Scope(*scope),
	})
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdExtract(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	response := fs.String("response", "", "The assistant's response")
	previous := fs.String("previous", "", "Previous exchange for context")
	fs.Parse(args)

	message := strings.Join(fs.Args(), " ")
	if message == "" {
		return fmt.Errorf("extract: user message is required")
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.ExtractMemories(ctx, message, &cogmem.ExtractOptions{
		AssistantResponse: *response,
		PreviousContext:   *previous,
	})
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdContext(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("context", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	project := fs.String("project", "", "Project identifier")
	current := fs.String("current", "", "Current context for semantic ranking")
	noGlobal := fs.Bool("no-global", false, "Exclude global memories")
	fs.Parse(args)

	client, err := common.newClient()
	if err != nil {
		return err
	}

	includeGlobal := !*noGlobal
	result, err := client.GetProjectContext(ctx, &cogmem.ProjectContextOptions{
		ProjectID:     common.projectID(*project),
		IncludeGlobal: &includeGlobal,
		Context:       *current,
	})
	if err != nil {
		return err
	}
	return printResult(result)
}

func listOptions(fs *flag.FlagSet) (*string, *string, *string, *int, *int) {
	memoryType := fs.String("type", "", "Filter by memory type")
	category := fs.String("category", "", "Filter by category")
	scope := fs.String("scope", "", "global, project, or all")
	limit := fs.Int("limit", 0, "Max results (default 50)")
	offset := fs.Int("offset", 0, "Pagination offset")
	return memoryType, category, scope, limit, offset
}

func cmdList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	memoryType, category, scope, limit, offset := listOptions(fs)
	fs.Parse(args)

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.ListMemories(ctx, &cogmem.ListMemoriesOptions{
		MemoryType: *memoryType,
		Category:   *category,
		Scope:      cogmem.Scope(*scope),
		Limit:      *limit,
		Offset:     *offset,
	})
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	id := fs.Int("id", 0, "Memory ID (required)")
	content := fs.String("content", "", "New content")
	importance := fs.Int("importance", -1, "New importance 1-10")
	scope := fs.String("scope", "", "New scope")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("update: -id is required")
	}

	params := cogmem.UpdateMemoryParams{
		Content: *content,
		Scope:   cogmem.Scope(*scope),
	}
	if *importance >= 0 {
		params.Importance = importance
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.UpdateMemory(ctx, *id, params)
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	id := fs.Int("id", 0, "Memory ID (required)")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("delete: -id is required")
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.DeleteMemory(ctx, *id)
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdUsage(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("usage", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	fs.Parse(args)

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.GetUsage(ctx)
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdSummary(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	project := fs.String("project", "", "Project identifier")
	fs.Parse(args)

	summary := strings.Join(fs.Args(), " ")
	if summary == "" {
		return fmt.Errorf("summary: text is required")
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.SaveSessionSummary(ctx, summary, common.projectID(*project))
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	output := fs.String("o", "", "Write export to file instead of stdout")
	fs.Parse(args)

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.ExportMemories(ctx)
	if err != nil {
		return err
	}

	if *output != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("export: failed to encode: %w", err)
		}
		if err := os.WriteFile(*output, data, 0600); err != nil {
			return fmt.Errorf("export: failed to write %s: %w", *output, err)
		}
		fmt.Printf("exported %v memories to %s\n", result["memory_count"], *output)
		return nil
	}
	return printResult(result)
}

func cmdImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("import: exactly one export file is required")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("import: failed to read %s: %w", fs.Arg(0), err)
	}

	// Accept either a full export document or a bare memories array.
	var export struct {
		Memories []map[string]interface{} `json:"memories"`
	}
	if err := json.Unmarshal(data, &export); err != nil {
		return fmt.Errorf("import: failed to parse %s: %w", fs.Arg(0), err)
	}
	memories := export.Memories
	if memories == nil {
		if err := json.Unmarshal(data, &memories); err != nil {
			return fmt.Errorf("import: %s has no memories array", fs.Arg(0))
		}
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.ImportMemories(ctx, memories)
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdVersions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("versions", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	id := fs.Int("id", 0, "Memory ID (required)")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("versions: -id is required")
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.GetMemoryVersions(ctx, *id)
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdTeam(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("team: subcommand required (members, invite, remove)")
	}
	sub, subArgs := args[0], args[1:]

	switch sub {
	case "members":
		fs := flag.NewFlagSet("team members", flag.ExitOnError)
		var common commonFlags
		common.register(fs)
		project := fs.String("project", "", "Filter by project")
		fs.Parse(subArgs)

		client, err := common.newClient()
		if err != nil {
			return err
		}
		result, err := client.GetTeamMembers(ctx, *project)
		if err != nil {
			return err
		}
		return printResult(result)

	case "invite":
		fs := flag.NewFlagSet("team invite", flag.ExitOnError)
		var common commonFlags
		common.register(fs)
		email := fs.String("email", "", "Email to invite (required)")
		project := fs.String("project", "", "Project to share (required)")
		role := fs.String("role", "", "member or viewer (default member)")
		fs.Parse(subArgs)

		if *email == "" || *project == "" {
			return fmt.Errorf("team invite: -email and -project are required")
		}

		client, err := common.newClient()
		if err != nil {
			return err
		}
		result, err := client.InviteTeamMember(ctx, *email, *project, cogmem.Role(*role))
		if err != nil {
			return err
		}
		return printResult(result)

	case "remove":
		fs := flag.NewFlagSet("team remove", flag.ExitOnError)
		var common commonFlags
		common.register(fs)
		id := fs.Int("id", 0, "Team member record ID (required)")
		fs.Parse(subArgs)

		if *id == 0 {
			return fmt.Errorf("team remove: -id is required")
		}

		client, err := common.newClient()
		if err != nil {
			return err
		}
		result, err := client.RemoveTeamMember(ctx, *id)
		if err != nil {
			return err
		}
		return printResult(result)

	default:
		return fmt.Errorf("team: unknown subcommand %q", sub)
	}
}

func cmdLink(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("link", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	id := fs.Int("id", 0, "Source memory ID (required)")
	related := fs.Int("related", 0, "Target memory ID (required)")
	rel := fs.String("rel", "related", "Relationship: led_to, contradicts, extends, related")
	fs.Parse(args)

	if *id == 0 || *related == 0 {
		return fmt.Errorf("link: -id and -related are required")
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.LinkMemories(ctx, *id, *related, cogmem.Relationship(*rel))
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdLinks(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("links", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	id := fs.Int("id", 0, "Memory ID (required)")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("links: -id is required")
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.GetMemoryLinks(ctx, *id)
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdCandidates(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("candidates", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	fs.Parse(args)

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.GetPromotionCandidates(ctx)
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdPromote(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("promote", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	id := fs.Int("id", 0, "Memory ID (required)")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("promote: -id is required")
	}

	client, err := common.newClient()
	if err != nil {
		return err
	}

	result, err := client.PromoteToGlobal(ctx, *id)
	if err != nil {
		return err
	}
	return printResult(result)
}

func cmdBrowse(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	memoryType, category, scope, limit, offset := listOptions(fs)
	fs.Parse(args)

	client, err := common.newClient()
	if err != nil {
		return err
	}

	return browse.Run(client, &cogmem.ListMemoriesOptions{
		MemoryType: *memoryType,
		Category:   *category,
		Scope:      cogmem.Scope(*scope),
		Limit:      *limit,
		Offset:     *offset,
	})
}

func cmdConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file (default ~/.cogmem/config.yaml)")
	apiKey := fs.String("api-key", "", "Set the API key")
	baseURL := fs.String("base-url", "", "Set the base URL")
	project := fs.String("project", "", "Set the default project")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	changed := false
	if *apiKey != "" {
		cfg.APIKey = *apiKey
		changed = true
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
		changed = true
	}
	if *project != "" {
		cfg.ProjectID = *project
		changed = true
	}

	if changed {
		if err := cfg.Save(*configPath); err != nil {
			return err
		}
		fmt.Println("config saved")
		return nil
	}

	// Show current config with the key redacted
	shown := *cfg
	if len(shown.APIKey) > 7 {
		shown.APIKey = shown.APIKey[:7] + "..."
	}
	fmt.Printf("api_key:    %s\nbase_url:   %s\nproject_id: %s\ntimeout:    %s\n",
		shown.APIKey, shown.BaseURL, shown.ProjectID, shown.Timeout.Duration)
	return nil
}
