package entities

import (
	"context"
	"fmt"
)

// ListDirectoryFunc lists the direct children of one directory ("" is the repository root).
type ListDirectoryFunc func(ctx context.Context, dir string) ([]FileEntry, error)

// WalkTree expands a repository that is only listable one directory at a time.
// It keeps an explicit stack of pending entries, so the result is the depth-first
// pre-order of the tree: a directory is fully expanded before its next sibling.
// Entries matched by filter are dropped, and matched directories are never listed.
// Only files are returned.
func WalkTree(
	ctx context.Context,
	list ListDirectoryFunc,
	filter PathFilter,
) ([]FileEntry, error) {
	root, err := list(ctx, "")
	if err != nil {
		return nil, err
	}

	var files []FileEntry
	pending := reversed(root)
	for len(pending) > 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("tree walk interrupted: %w", ctxErr)
		}

		entry := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if filter != nil && filter.ShouldIgnore(entry.Path) {
			continue
		}
		if !entry.IsDir {
			files = append(files, entry)
			continue
		}

		children, listErr := list(ctx, entry.Path)
		if listErr != nil {
			return nil, listErr
		}
		pending = append(pending, reversed(children)...)
	}

	return files, nil
}

func reversed(entries []FileEntry) []FileEntry {
	out := make([]FileEntry, len(entries))
	for i, entry := range entries {
		out[len(entries)-1-i] = entry
	}
	return out
}
