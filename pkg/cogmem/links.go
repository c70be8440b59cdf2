package cogmem

import (
	"context"
	"fmt"
)

// LinkMemories creates a typed, directed link from one memory to another.
func (c *Client) LinkMemories(ctx context.Context, memoryID, relatedMemoryID int, relationship Relationship) (Result, error) {
	return c.post(ctx, fmt.Sprintf("memory/%d/link", memoryID), map[string]interface{}{
		"related_memory_id": relatedMemoryID,
		"relationship_type": relationship,
	})
}

// GetMemoryLinks returns the "links" array for a memory.
func (c *Client) GetMemoryLinks(ctx context.Context, memoryID int) (Result, error) {
	return c.get(ctx, fmt.Sprintf("memory/%d/links", memoryID), nil)
}

// GetPromotionCandidates finds project memories that recur across projects
// and are eligible for promotion to global scope.
func (c *Client) GetPromotionCandidates(ctx context.Context) (Result, error) {
	return c.get(ctx, "promotion-candidates", nil)
}

// PromoteToGlobal promotes a project-scoped memory to global scope.
func (c *Client) PromoteToGlobal(ctx context.Context, memoryID int) (Result, error) {
	return c.post(ctx, fmt.Sprintf("memory/%d/promote", memoryID), map[string]interface{}{})
}
