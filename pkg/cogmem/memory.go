package cogmem

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SaveMemoryOptions are the optional fields for SaveMemory. Zero values are
// replaced with the service defaults before sending.
type SaveMemoryOptions struct {
	// MemoryType classifies the memory, e.g. "architecture", "decision",
	// "bug", "pattern". Defaults to "context".
	MemoryType string

	// Category groups memories, e.g. "frontend", "backend", "database",
	// "devops". Defaults to "general".
	Category string

	// Subject is what the memory is about (max 100 chars).
	Subject string

	// Importance ranges 1-10 and defaults to 5. Reserve 9-10 for core
	// architecture facts.
	Importance int

	// Scope is ScopeProject or ScopeGlobal. Defaults to ScopeProject.
	Scope Scope

	// ProjectID identifies the project the memory belongs to.
	ProjectID string
}

// SaveMemory stores a new memory. Content should be a discrete fact of
// 5-500 characters.
//
// The result carries "memory_id" and "stored", plus optional "deduplicated",
// "conflict_detected", and "warning" fields.
func (c *Client) SaveMemory(ctx context.Context, content string, opts *SaveMemoryOptions) (Result, error) {
	if opts == nil {
		opts = &SaveMemoryOptions{}
	}

	memoryType := opts.MemoryType
	if memoryType == "" {
		memoryType = DefaultMemoryType
	}
	category := opts.Category
	if category == "" {
		category = DefaultCategory
	}
	importance := opts.Importance
	if importance == 0 {
		importance = DefaultImportance
	}
	scope := opts.Scope
	if scope == "" {
		scope = ScopeProject
	}

	return c.post(ctx, "store", map[string]interface{}{
		"content":     content,
		"memory_type": memoryType,
		"category":    category,
		"subject":     opts.Subject,
		"importance":  importance,
		"scope":       scope,
		"project_id":  opts.ProjectID,
	})
}

// RecallOptions are the optional fields for RecallMemories.
type RecallOptions struct {
	// Limit caps results at 1-20. Defaults to 10.
	Limit int

	// MemoryType filters by type. Omitted from the request when empty.
	MemoryType string

	// Scope is ScopeGlobal, ScopeProject, or ScopeAll. Defaults to ScopeAll.
	Scope Scope
}

// RecallMemories runs a semantic search across memories. The query should be
// natural language, 2-500 characters. The result's "memories" array is ranked
// by relevance.
func (c *Client) RecallMemories(ctx context.Context, query string, opts *RecallOptions) (Result, error) {
	if opts == nil {
		opts = &RecallOptions{}
	}

	limit := opts.Limit
	if limit == 0 {
		limit = DefaultRecallLimit
	}
	scope := opts.Scope
	if scope == "" {
		scope = ScopeAll
	}

	payload := map[string]interface{}{
		"query": query,
		"limit": limit,
		"scope": scope,
	}
	if opts.MemoryType != "" {
		payload["memory_type"] = opts.MemoryType
	}

	return c.post(ctx, "recall", payload)
}

// ExtractOptions are the optional fields for ExtractMemories.
type ExtractOptions struct {
	// AssistantResponse is the assistant's reply (max 4000 chars).
	AssistantResponse string

	// PreviousContext is the prior exchange, for disambiguation (max 2000 chars).
	PreviousContext string
}

// ExtractMemories asks the service to extract memories from a conversation
// exchange. The result carries an "extracted" count and a "memories" array.
func (c *Client) ExtractMemories(ctx context.Context, userMessage string, opts *ExtractOptions) (Result, error) {
	if opts == nil {
		opts = &ExtractOptions{}
	}

	payload := map[string]interface{}{
		"user_message": userMessage,
	}
	if opts.AssistantResponse != "" {
		payload["assistant_response"] = opts.AssistantResponse
	}
	if opts.PreviousContext != "" {
		payload["previous_context"] = opts.PreviousContext
	}

	return c.post(ctx, "extract", payload)
}

// ProjectContextOptions are the optional fields for GetProjectContext.
type ProjectContextOptions struct {
	// ProjectID identifies the project to load context for.
	ProjectID string

	// IncludeGlobal controls whether global memories are blended in.
	// nil means true.
	IncludeGlobal *bool

	// Context is the current working context, used to blend semantic
	// relevance into the ranking.
	Context string
}

// GetProjectContext loads project context with smart ranking. The result's
// "memories" array is sorted by blended score.
func (c *Client) GetProjectContext(ctx context.Context, opts *ProjectContextOptions) (Result, error) {
	if opts == nil {
		opts = &ProjectContextOptions{}
	}

	includeGlobal := true
	if opts.IncludeGlobal != nil {
		includeGlobal = *opts.IncludeGlobal
	}

	params := url.Values{}
	params.Set("include_global", strconv.FormatBool(includeGlobal))
	if opts.ProjectID != "" {
		params.Set("project_id", opts.ProjectID)
	}
	if opts.Context != "" {
		params.Set("context", opts.Context)
	}

	return c.get(ctx, "context", params)
}

// ListMemoriesOptions are the optional filters for ListMemories.
type ListMemoriesOptions struct {
	// MemoryType filters by type. Omitted when empty.
	MemoryType string

	// Category filters by category. Omitted when empty.
	Category string

	// Scope is ScopeGlobal, ScopeProject, or ScopeAll. Defaults to ScopeAll.
	Scope Scope

	// Limit defaults to 50, max 100.
	Limit int

	// Offset is the pagination offset.
	Offset int
}

// ListMemories lists memories with filters and pagination.
func (c *Client) ListMemories(ctx context.Context, opts *ListMemoriesOptions) (Result, error) {
	if opts == nil {
		opts = &ListMemoriesOptions{}
	}

	limit := opts.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	scope := opts.Scope
	if scope == "" {
		scope = ScopeAll
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(opts.Offset))
	params.Set("scope", string(scope))
	if opts.MemoryType != "" {
		params.Set("memory_type", opts.MemoryType)
	}
	if opts.Category != "" {
		params.Set("category", opts.Category)
	}

	return c.get(ctx, "memories", params)
}

// UpdateMemoryParams carries the fields to change on a memory. Only the
// fields present in the payload are changed server-side, so unset fields are
// omitted entirely rather than sent as zero values.
type UpdateMemoryParams struct {
	// Content replaces the memory content when non-empty.
	Content string

	// Importance replaces the importance (1-10) when non-nil.
	Importance *int

	// Scope replaces the scope when non-empty.
	Scope Scope
}

// UpdateMemory performs a partial update of a memory.
func (c *Client) UpdateMemory(ctx context.Context, memoryID int, params UpdateMemoryParams) (Result, error) {
	payload := map[string]interface{}{}
	if params.Content != "" {
		payload["content"] = params.Content
	}
	if params.Importance != nil {
		payload["importance"] = *params.Importance
	}
	if params.Scope != "" {
		payload["scope"] = params.Scope
	}

	return c.patch(ctx, fmt.Sprintf("memory/%d", memoryID), payload)
}

// DeleteMemory permanently deletes a memory.
func (c *Client) DeleteMemory(ctx context.Context, memoryID int) (Result, error) {
	return c.del(ctx, fmt.Sprintf("memory/%d", memoryID))
}

// GetUsage returns usage stats and tier limits for the authenticated account.
func (c *Client) GetUsage(ctx context.Context) (Result, error) {
	return c.get(ctx, "usage", nil)
}
