package entities

import "strings"

// PathFilter decides whether a repository-relative path is excluded from aggregation.
type PathFilter interface {
	ShouldIgnore(path string) bool
}

// IgnoreFilter is the fixed set of exclusion rules for non-source artifacts.
// Directory rules match whole path segments, so a match on a directory also
// covers everything beneath it. Suffix rules are case-insensitive.
type IgnoreFilter struct {
	directories []string
	suffixes    []string
}

//nolint:gochecknoglobals // immutable rule set
var (
	ignoredDirectories = []string{
		".git",
		"node_modules",
		"target",
		"dist",
		"build",
		"coverage",
		"reports",
		".idea",
		".vscode",
		".nyc_output",
		"cypress/results",
		"__snapshots__",
		"__image_snapshots__",
	}

	ignoredSuffixes = []string{
		// logs
		".log",
		// locks
		".lock", "package-lock.json", "pnpm-lock.yaml", "npm-shrinkwrap.json",
		// images
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".svg", ".webp", ".tiff",
		// fonts
		".woff", ".woff2", ".ttf", ".otf", ".eot",
		// archives
		".zip", ".tar", ".gz", ".tgz", ".rar", ".7z", ".jar", ".war",
		// executables and compiled objects
		".exe", ".dll", ".so", ".dylib", ".bin", ".class", ".o", ".a",
		// environment
		".env",
	}
)

// NewIgnoreFilter returns the filter with the default rule set.
func NewIgnoreFilter() *IgnoreFilter {
	return &IgnoreFilter{
		directories: ignoredDirectories,
		suffixes:    ignoredSuffixes,
	}
}

// ShouldIgnore is pure and total: it never fails and performs no I/O.
func (f *IgnoreFilter) ShouldIgnore(path string) bool {
	normalized := strings.Trim(strings.ReplaceAll(path, "\\", "/"), "/")
	if normalized == "" {
		return false
	}

	for _, dir := range f.directories {
		if matchesSegment(normalized, dir) {
			return true
		}
	}

	lower := strings.ToLower(normalized)
	for _, suffix := range f.suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}

	return false
}

// matchesSegment reports whether dir appears in path as a run of whole segments:
// equal, leading "dir/", inner "/dir/" or trailing "/dir".
func matchesSegment(path, dir string) bool {
	return path == dir ||
		strings.HasPrefix(path, dir+"/") ||
		strings.Contains(path, "/"+dir+"/") ||
		strings.HasSuffix(path, "/"+dir)
}
