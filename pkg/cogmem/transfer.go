package cogmem

import (
	"context"
	"fmt"
)

// ExportMemories exports all memories as JSON. The result carries "version",
// "exported_at", "memory_count", and a "memories" array suitable for
// ImportMemories.
func (c *Client) ExportMemories(ctx context.Context) (Result, error) {
	return c.get(ctx, "export", nil)
}

// ImportMemories bulk-imports memory objects. Each object needs a "content"
// key; the remaining fields are optional. The result carries "imported",
// "skipped", and "errors" counts.
func (c *Client) ImportMemories(ctx context.Context, memories []map[string]interface{}) (Result, error) {
	return c.post(ctx, "import", map[string]interface{}{
		"memories": memories,
	})
}

// GetMemoryVersions returns the version history for a memory: a "versions"
// array of content, importance, scope, changed_by, and timestamp entries.
func (c *Client) GetMemoryVersions(ctx context.Context, memoryID int) (Result, error) {
	return c.get(ctx, fmt.Sprintf("memory/%d/versions", memoryID), nil)
}
