package tree

import (
	"fmt"

	"github.com/mattsolo1/epiphany/pkg/models"
)

// VisitFunc is called for every item during a walk. parent is nil for top-level
// items. Returning false stops the walk.
type VisitFunc func(item, parent *models.ContentItem, depth int) bool

// Walk visits items depth-first in display order.
func Walk(items []*models.ContentItem, fn VisitFunc) {
	walk(items, nil, 0, fn)
}

func walk(items []*models.ContentItem, parent *models.ContentItem, depth int, fn VisitFunc) bool {
	for _, item := range items {
		if item == nil {
			continue
		}
		if !fn(item, parent, depth) {
			return false
		}
		if !walk(item.Children, item, depth+1, fn) {
			return false
		}
	}
	return true
}

// Find returns the item with the given id and its parent (nil at top level).
func Find(items []*models.ContentItem, id string) (item, parent *models.ContentItem) {
	Walk(items, func(it, p *models.ContentItem, _ int) bool {
		if it.ID == id {
			item, parent = it, p
			return false
		}
		return true
	})
	return item, parent
}

// Insert appends item to the children of parentID, or to the top level when parentID is empty.
func Insert(content *models.WorkspaceContent, parentID string, item *models.ContentItem) error {
	if parentID == "" {
		content.ContentTable = append(content.ContentTable, item)
		return nil
	}

	parent, _ := Find(content.ContentTable, parentID)
	if parent == nil {
		return fmt.Errorf("parent note not found: %s", parentID)
	}
	parent.Children = append(parent.Children, item)
	return nil
}

// Remove detaches the item with the given id from the tree and returns it.
func Remove(content *models.WorkspaceContent, id string) (*models.ContentItem, error) {
	item, parent := Find(content.ContentTable, id)
	if item == nil {
		return nil, fmt.Errorf("note not found: %s", id)
	}

	if parent == nil {
		content.ContentTable = without(content.ContentTable, item)
	} else {
		parent.Children = without(parent.Children, item)
	}
	return item, nil
}

func without(items []*models.ContentItem, target *models.ContentItem) []*models.ContentItem {
	out := make([]*models.ContentItem, 0, len(items))
	for _, it := range items {
		if it != target {
			out = append(out, it)
		}
	}
	return out
}

// Normalize replaces nil child lists with empty ones so they serialize as [].
func Normalize(items []*models.ContentItem) {
	Walk(items, func(it, _ *models.ContentItem, _ int) bool {
		if it.Children == nil {
			it.Children = []*models.ContentItem{}
		}
		return true
	})
}

// Count returns the number of items in the tree.
func Count(items []*models.ContentItem) int {
	n := 0
	Walk(items, func(_, _ *models.ContentItem, _ int) bool {
		n++
		return true
	})
	return n
}
