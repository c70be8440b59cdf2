package browse

import (
	"fmt"
	"strings"

	"github.com/cogmemai/cogmem-go/pkg/cogmem"
)

// memoryItem is one memory row in the list. It satisfies list.Item for the
// default delegate.
type memoryItem struct {
	id         int
	content    string
	memoryType string
	category   string
	scope      string
	importance int
}

func (m memoryItem) Title() string {
	title := strings.ReplaceAll(m.content, "\n", " ")
	if len(title) > 80 {
		title = title[:77] + "..."
	}
	return title
}

func (m memoryItem) Description() string {
	return fmt.Sprintf("#%d  %s/%s  scope:%s  importance:%d",
		m.id, m.memoryType, m.category, m.scope, m.importance)
}

func (m memoryItem) FilterValue() string {
	return m.content + " " + m.memoryType + " " + m.category
}

// parseMemories converts a ListMemories result into list rows. Entries
// missing a content field are skipped; the service's response shapes are not
// guaranteed, so every field access is defensive.
func parseMemories(result cogmem.Result) []memoryItem {
	raw, ok := result["memories"].([]interface{})
	if !ok {
		return nil
	}

	items := make([]memoryItem, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		content, ok := fields["content"].(string)
		if !ok || content == "" {
			continue
		}
		items = append(items, memoryItem{
			id:         intField(fields, "id"),
			content:    content,
			memoryType: stringField(fields, "memory_type"),
			category:   stringField(fields, "category"),
			scope:      stringField(fields, "scope"),
			importance: intField(fields, "importance"),
		})
	}
	return items
}

func stringField(fields map[string]interface{}, key string) string {
	s, _ := fields[key].(string)
	return s
}

func intField(fields map[string]interface{}, key string) int {
	// JSON numbers decode as float64
	if f, ok := fields[key].(float64); ok {
		return int(f)
	}
	return 0
}
