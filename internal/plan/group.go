package plan

import (
	"path/filepath"
	"sort"
)

// previewExamples caps how many file names a preview group lists.
const previewExamples = 3

// Group summarizes the operations routed into one destination folder.
type Group struct {
	Folder   string
	Count    int
	Examples []string
	More     int
}

// GroupByFolder collapses operations into per-folder preview groups, sorted
// by folder name. Each group lists up to three example file names and the
// count of remaining files.
func GroupByFolder(operations []Operation) []Group {
	byFolder := make(map[string][]Operation)
	for _, op := range operations {
		folder := op.Folder()
		byFolder[folder] = append(byFolder[folder], op)
	}

	groups := make([]Group, 0, len(byFolder))
	for folder, ops := range byFolder {
		group := Group{Folder: folder, Count: len(ops)}
		for i, op := range ops {
			if i == previewExamples {
				group.More = len(ops) - previewExamples
				break
			}
			group.Examples = append(group.Examples, filepath.Base(op.Source))
		}
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Folder < groups[j].Folder })
	return groups
}
