package tree

import (
	"fmt"

	"github.com/mattsolo1/epiphany/pkg/models"
)

// ProblemKind categorizes an inconsistency found in a content tree.
type ProblemKind string

const (
	ProblemDuplicateID       ProblemKind = "duplicate-id"
	ProblemDuplicateFilename ProblemKind = "duplicate-filename"
	ProblemMissingFile       ProblemKind = "missing-file"
	ProblemEmptyID           ProblemKind = "empty-id"
)

// Problem is one finding of Check
type Problem struct {
	Kind   ProblemKind
	ItemID string
	Name   string
	Detail string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %q (%s) %s", p.Kind, p.Name, p.ItemID, p.Detail)
}

// Check reports duplicate ids, duplicate filenames and, when exists is non-nil,
// items whose note file is missing.
func Check(items []*models.ContentItem, exists func(filename string) bool) []Problem {
	var problems []Problem
	ids := make(map[string]*models.ContentItem)
	filenames := make(map[string]*models.ContentItem)

	Walk(items, func(it, _ *models.ContentItem, _ int) bool {
		if it.ID == "" {
			problems = append(problems, Problem{Kind: ProblemEmptyID, Name: it.Name, Detail: it.Filename})
		} else if first, ok := ids[it.ID]; ok {
			problems = append(problems, Problem{
				Kind:   ProblemDuplicateID,
				ItemID: it.ID,
				Name:   it.Name,
				Detail: fmt.Sprintf("also used by %q", first.Name),
			})
		} else {
			ids[it.ID] = it
		}

		if first, ok := filenames[it.Filename]; ok {
			problems = append(problems, Problem{
				Kind:   ProblemDuplicateFilename,
				ItemID: it.ID,
				Name:   it.Name,
				Detail: fmt.Sprintf("%s also used by %q", it.Filename, first.Name),
			})
		} else {
			filenames[it.Filename] = it
		}

		if exists != nil && !exists(it.Filename) {
			problems = append(problems, Problem{
				Kind:   ProblemMissingFile,
				ItemID: it.ID,
				Name:   it.Name,
				Detail: it.Filename,
			})
		}
		return true
	})

	return problems
}
