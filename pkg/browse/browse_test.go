package browse

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cogmemai/cogmem-go/pkg/cogmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	result cogmem.Result
	err    error
	opts   *cogmem.ListMemoriesOptions
}

func (f *fakeLister) ListMemories(ctx context.Context, opts *cogmem.ListMemoriesOptions) (cogmem.Result, error) {
	f.opts = opts
	return f.result, f.err
}

func listResult(contents ...string) cogmem.Result {
	memories := make([]interface{}, 0, len(contents))
	for i, content := range contents {
		memories = append(memories, map[string]interface{}{
			"id":          float64(i + 1),
			"content":     content,
			"memory_type": "context",
			"category":    "general",
			"scope":       "project",
			"importance":  float64(5),
		})
	}
	return cogmem.Result{"memories": memories}
}

func TestModel_LoadsMemoriesOnInit(t *testing.T) {
	lister := &fakeLister{result: listResult("first fact", "second fact")}
	model := New(lister, &cogmem.ListMemoriesOptions{Scope: cogmem.ScopeProject})

	msg := model.Init()()
	loaded, ok := msg.(memoriesLoadedMsg)
	require.True(t, ok, "Init should produce memoriesLoadedMsg, got %T", msg)
	assert.Len(t, loaded, 2)
	assert.Equal(t, cogmem.ScopeProject, lister.opts.Scope)

	updated, _ := model.Update(msg)
	model = updated.(Model)
	assert.Equal(t, stateList, model.state)
	assert.Len(t, model.list.Items(), 2)
}

func TestModel_LoadFailure(t *testing.T) {
	lister := &fakeLister{err: errors.New("connection refused")}
	model := New(lister, nil)

	msg := model.Init()()
	failed, ok := msg.(loadFailedMsg)
	require.True(t, ok)

	updated, _ := model.Update(failed)
	model = updated.(Model)
	assert.Equal(t, stateList, model.state)
	assert.Contains(t, model.View(), "connection refused")
}

func TestModel_EnterOpensDetail(t *testing.T) {
	lister := &fakeLister{result: listResult("the only fact")}
	model := New(lister, nil)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model = updated.(Model)
	updated, _ = model.Update(model.Init()())
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	assert.Equal(t, stateDetail, model.state)
	assert.Equal(t, "the only fact", model.selected.content)
	assert.Contains(t, model.View(), "memory #1")
}

func TestModel_EscReturnsToList(t *testing.T) {
	lister := &fakeLister{result: listResult("fact")}
	model := New(lister, nil)

	updated, _ := model.Update(model.Init()())
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	require.Equal(t, stateDetail, model.state)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)
	assert.Equal(t, stateList, model.state)
}

func TestModel_QuitKeys(t *testing.T) {
	model := New(&fakeLister{result: listResult()}, nil)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestParseMemories_SkipsMalformedEntries(t *testing.T) {
	result := cogmem.Result{
		"memories": []interface{}{
			map[string]interface{}{"id": float64(1), "content": "good"},
			map[string]interface{}{"id": float64(2)}, // no content
			"not an object",
		},
	}

	items := parseMemories(result)
	require.Len(t, items, 1)
	assert.Equal(t, "good", items[0].content)
	assert.Equal(t, 1, items[0].id)
}

func TestParseMemories_MissingArray(t *testing.T) {
	assert.Nil(t, parseMemories(cogmem.Result{"total": float64(0)}))
}

func TestMemoryItem_TitleTruncated(t *testing.T) {
	item := memoryItem{content: strings.Repeat("x", 120)}
	title := item.Title()
	assert.Len(t, title, 80)
	assert.True(t, strings.HasSuffix(title, "..."))
}

func TestRenderContent_PlainTextUnchanged(t *testing.T) {
	assert.Equal(t, "no code here", renderContent("no code here"))
}

func TestRenderContent_HighlightsFences(t *testing.T) {
	content := "intro\n```go\nfunc main() {}\n```\noutro"
	rendered := renderContent(content)

	assert.Contains(t, rendered, "intro")
	assert.Contains(t, rendered, "outro")
	assert.NotContains(t, rendered, "```")
	assert.Contains(t, rendered, "main")
}
