package cogmem

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveMemory_DefaultsApplied(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"memory_id":42,"stored":true}`)

	result, err := client.SaveMemory(context.Background(), "uses pgx for database access", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(42), result["memory_id"])

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/cogmemai/store", captured.Path)
	assert.Equal(t, map[string]interface{}{
		"content":     "uses pgx for database access",
		"memory_type": "context",
		"category":    "general",
		"subject":     "",
		"importance":  float64(5),
		"scope":       "project",
		"project_id":  "",
	}, captured.Body)
}

func TestSaveMemory_ExplicitFields(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"stored":true}`)

	_, err := client.SaveMemory(context.Background(), "auth is JWT based", &SaveMemoryOptions{
		MemoryType: "architecture",
		Category:   "backend",
		Subject:    "authentication",
		Importance: 9,
		Scope:      ScopeGlobal,
		ProjectID:  "api-server",
	})
	require.NoError(t, err)

	assert.Equal(t, "architecture", captured.Body["memory_type"])
	assert.Equal(t, "backend", captured.Body["category"])
	assert.Equal(t, float64(9), captured.Body["importance"])
	assert.Equal(t, "global", captured.Body["scope"])
	assert.Equal(t, "api-server", captured.Body["project_id"])
}

func TestRecallMemories_MemoryTypeOmittedWhenEmpty(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"memories":[]}`)

	_, err := client.RecallMemories(context.Background(), "which ORM do we use?", nil)
	require.NoError(t, err)

	assert.Equal(t, "/cogmemai/recall", captured.Path)
	assert.Equal(t, map[string]interface{}{
		"query": "which ORM do we use?",
		"limit": float64(10),
		"scope": "all",
	}, captured.Body)
	assert.NotContains(t, captured.Body, "memory_type")
}

func TestRecallMemories_WithFilter(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"memories":[]}`)

	_, err := client.RecallMemories(context.Background(), "deploy process", &RecallOptions{
		Limit:      5,
		MemoryType: "decision",
		Scope:      ScopeProject,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(5), captured.Body["limit"])
	assert.Equal(t, "decision", captured.Body["memory_type"])
	assert.Equal(t, "project", captured.Body["scope"])
}

func TestExtractMemories_SparsePayload(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"extracted":0,"memories":[]}`)

	_, err := client.ExtractMemories(context.Background(), "let's switch to pnpm", nil)
	require.NoError(t, err)

	assert.Equal(t, "/cogmemai/extract", captured.Path)
	assert.Equal(t, map[string]interface{}{"user_message": "let's switch to pnpm"}, captured.Body)

	_, err = client.ExtractMemories(context.Background(), "let's switch to pnpm", &ExtractOptions{
		AssistantResponse: "Updated the lockfile.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Updated the lockfile.", captured.Body["assistant_response"])
	assert.NotContains(t, captured.Body, "previous_context")
}

func TestGetProjectContext_IncludeGlobalAlwaysSent(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"memories":[]}`)

	_, err := client.GetProjectContext(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/cogmemai/context", captured.Path)
	assert.Equal(t, map[string]string{"include_global": "true"}, captured.Query)

	includeGlobal := false
	_, err = client.GetProjectContext(context.Background(), &ProjectContextOptions{
		ProjectID:     "my-project",
		IncludeGlobal: &includeGlobal,
	})
	require.NoError(t, err)

	assert.Equal(t, "false", captured.Query["include_global"])
	assert.Equal(t, "my-project", captured.Query["project_id"])
}

func TestListMemories_DefaultQueryKeysOnly(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"memories":[],"total":0}`)

	_, err := client.ListMemories(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "/cogmemai/memories", captured.Path)
	assert.Equal(t, map[string]string{
		"limit":  "50",
		"offset": "0",
		"scope":  "all",
	}, captured.Query)
}

func TestListMemories_WithFilters(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"memories":[]}`)

	_, err := client.ListMemories(context.Background(), &ListMemoriesOptions{
		MemoryType: "bug",
		Category:   "backend",
		Scope:      ScopeProject,
		Limit:      20,
		Offset:     40,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"limit":       "20",
		"offset":      "40",
		"scope":       "project",
		"memory_type": "bug",
		"category":    "backend",
	}, captured.Query)
}

func TestUpdateMemory_OnlyImportanceSent(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"updated":true}`)

	importance := 9
	_, err := client.UpdateMemory(context.Background(), 17, UpdateMemoryParams{
		Importance: &importance,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, captured.Method)
	assert.Equal(t, "/cogmemai/memory/17", captured.Path)
	assert.Equal(t, map[string]interface{}{"importance": float64(9)}, captured.Body)
}

func TestUpdateMemory_AllFields(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"updated":true}`)

	importance := 3
	_, err := client.UpdateMemory(context.Background(), 17, UpdateMemoryParams{
		Content:    "revised fact",
		Importance: &importance,
		Scope:      ScopeGlobal,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"content":    "revised fact",
		"importance": float64(3),
		"scope":      "global",
	}, captured.Body)
}

func TestDeleteMemory(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"deleted":true}`)

	_, err := client.DeleteMemory(context.Background(), 99)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, captured.Method)
	assert.Equal(t, "/cogmemai/memory/99", captured.Path)
	assert.Nil(t, captured.Body)
}

func TestIngestDocument(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"chunks_processed":1,"extracted":3}`)

	_, err := client.IngestDocument(context.Background(), "# README\nWe use Go.", &IngestOptions{
		DocumentType: "README",
	})
	require.NoError(t, err)

	assert.Equal(t, "/cogmemai/ingest", captured.Path)
	assert.Equal(t, "README", captured.Body["document_type"])
	assert.NotContains(t, captured.Body, "project_id")
}

func TestSaveSessionSummary(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"memory_id":7,"stored":true}`)

	_, err := client.SaveSessionSummary(context.Background(), "migrated auth to JWT", "")
	require.NoError(t, err)

	assert.Equal(t, "/cogmemai/session-summary", captured.Path)
	assert.Equal(t, map[string]interface{}{"summary": "migrated auth to JWT"}, captured.Body)
}
