//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/corrigir/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// FileEntryBuilder helps create test file entries with a fluent interface.
type FileEntryBuilder struct {
	*testkit.BaseBuilder
	path     string
	objectID string
	isDir    bool
}

// NewFileEntryBuilder creates a new file entry builder with sensible defaults.
func NewFileEntryBuilder() *FileEntryBuilder {
	return &FileEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "src/main.js",
		objectID:    "0000000000000000000000000000000000000000",
		isDir:       false,
	}
}

// WithPath sets the repository-relative path.
func (b *FileEntryBuilder) WithPath(path string) *FileEntryBuilder {
	b.path = path
	return b
}

// WithObjectID sets the object id.
func (b *FileEntryBuilder) WithObjectID(objectID string) *FileEntryBuilder {
	b.objectID = objectID
	return b
}

// AsDirectory marks the entry as a directory.
func (b *FileEntryBuilder) AsDirectory() *FileEntryBuilder {
	b.isDir = true
	return b
}

// Build creates the file entry (satisfies testkit.Builder interface).
func (b *FileEntryBuilder) Build() interface{} {
	return b.BuildFileEntry()
}

// BuildFileEntry creates the file entry with a concrete return type.
func (b *FileEntryBuilder) BuildFileEntry() entities.FileEntry {
	return entities.FileEntry{
		Path:     b.path,
		ObjectID: b.objectID,
		IsDir:    b.isDir,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *FileEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "src/main.js"
	b.objectID = "0000000000000000000000000000000000000000"
	b.isDir = false
	return b
}

// Clone creates a deep copy of the FileEntryBuilder.
func (b *FileEntryBuilder) Clone() testkit.Builder {
	return &FileEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		objectID:    b.objectID,
		isDir:       b.isDir,
	}
}

// Files builds one file entry per path, in order.
func Files(paths ...string) []entities.FileEntry {
	entries := make([]entities.FileEntry, 0, len(paths))
	for _, path := range paths {
		entries = append(entries, NewFileEntryBuilder().WithPath(path).BuildFileEntry())
	}
	return entries
}
