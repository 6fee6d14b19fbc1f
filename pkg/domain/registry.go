package domain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gosimple/slug"
)

type SelectToolParams struct {
	ToolType ToolType
}

type CategoryCount struct {
	CategoryInfo
	Count int `json:"count"`
}

type ToolRegistry interface {
	Register(tool Tool, executor ToolExecutor) error
	Select(ctx context.Context, params SelectToolParams) (ToolExecutor, error)
	Lookup(id ToolType) (Tool, error)
	Tools() []Tool
	Search(query string) []Tool
	FilterByCategory(category Category) []Tool
	Filter(query string, category Category) []Tool
	CategoryCounts() []CategoryCount
}

type toolRegistry struct {
	mtx             sync.RWMutex
	tools           []Tool
	toolsByType     map[ToolType]Tool
	executorsByType map[ToolType]ToolExecutor
}

func NewToolRegistry() ToolRegistry {
	return &toolRegistry{
		tools:           make([]Tool, 0),
		toolsByType:     make(map[ToolType]Tool),
		executorsByType: make(map[ToolType]ToolExecutor),
	}
}

func (r *toolRegistry) Register(tool Tool, executor ToolExecutor) error {
	if !isToolID(tool.ID) {
		return fmt.Errorf("tool id %q must be kebab-case", tool.ID)
	}

	if tool.Category == Category_All || !tool.Category.IsValid() {
		return fmt.Errorf("tool %s has invalid category %q", tool.ID, tool.Category)
	}

	if len(tool.Actions) == 0 {
		return fmt.Errorf("tool %s declares no actions", tool.ID)
	}

	if executor == nil {
		return fmt.Errorf("tool %s has no executor", tool.ID)
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.toolsByType[tool.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.ID)
	}

	r.tools = append(r.tools, tool)
	r.toolsByType[tool.ID] = tool
	r.executorsByType[tool.ID] = executor

	return nil
}

func (r *toolRegistry) Select(ctx context.Context, params SelectToolParams) (ToolExecutor, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	executor, ok := r.executorsByType[params.ToolType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, params.ToolType)
	}

	return executor, nil
}

func (r *toolRegistry) Lookup(id ToolType) (Tool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	tool, ok := r.toolsByType[id]
	if !ok {
		return Tool{}, fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}

	return tool, nil
}

func (r *toolRegistry) Tools() []Tool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	tools := make([]Tool, len(r.tools))
	copy(tools, r.tools)

	return tools
}

func (r *toolRegistry) Search(query string) []Tool {
	return r.Filter(query, Category_All)
}

func (r *toolRegistry) FilterByCategory(category Category) []Tool {
	return r.Filter("", category)
}

// Filter keeps registration order. An empty query and the "all" category match everything.
func (r *toolRegistry) Filter(query string, category Category) []Tool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))

	if category == "" {
		category = Category_All
	}

	tools := make([]Tool, 0)

	for _, tool := range r.tools {
		if category != Category_All && tool.Category != category {
			continue
		}

		if !tool.Matches(query) {
			continue
		}

		tools = append(tools, tool)
	}

	return tools
}

func (r *toolRegistry) CategoryCounts() []CategoryCount {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	countsByCategory := make(map[Category]int)
	for _, tool := range r.tools {
		countsByCategory[tool.Category]++
	}

	counts := make([]CategoryCount, 0, len(Categories)+1)
	counts = append(counts, CategoryCount{
		CategoryInfo: CategoryInfo{ID: Category_All, Name: "All"},
		Count:        len(r.tools),
	})

	for _, info := range Categories {
		counts = append(counts, CategoryCount{
			CategoryInfo: info,
			Count:        countsByCategory[info.ID],
		})
	}

	return counts
}

// Matches reports whether query is a case-insensitive substring of the
// tool's name, description or any keyword.
func (t Tool) Matches(query string) bool {
	if query == "" {
		return true
	}

	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(t.Name), query) {
		return true
	}

	if strings.Contains(strings.ToLower(t.Description), query) {
		return true
	}

	for _, keyword := range t.Keywords {
		if strings.Contains(strings.ToLower(keyword), query) {
			return true
		}
	}

	return false
}

func isToolID(id ToolType) bool {
	return slug.IsSlug(string(id)) && !strings.Contains(string(id), "_")
}
