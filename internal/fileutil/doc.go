// Package fileutil provides the file discovery primitives used by the tag registry.
//
// # Purpose
//
// The fileutil package is the leaf of filetags. It knows how to:
//   - Walk a base directory recursively and collect files whose name matches a glob
//   - Drop hidden and editor lock files (names starting with "." or "~$")
//   - Match shell-style globs against names or full paths
//   - Compute file sizes, filename stems and canonical directory paths
//
// # Main Components
//
// Matcher - scans an afero.Fs:
//   - NewMatcher(fs) wraps any afero filesystem (afero.NewOsFs in production,
//     afero.NewMemMapFs in tests)
//   - Scan(root, pattern, excludeHidden) returns absolute paths in traversal order
//   - SizeOf(path) returns the size in bytes of a single file
//   - Canonicalize(dir) resolves a directory argument once, at registry construction
//
// # Glob Semantics
//
// Patterns follow fnmatch: "*" matches any run of characters, "?" matches one
// character, "[abc]" and "[!abc]" match character classes. Braces and backslashes
// are literal. Patterns are compiled with github.com/gobwas/glob without
// separators, so "*" also matches "/" when a pattern is applied to a full path.
//
// # Usage Examples
//
//	m := fileutil.NewMatcher(afero.NewOsFs())
//	root, err := m.Canonicalize("./videos")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	files, err := m.Scan(root, "*Camera.avi", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, file := range files {
//	    fmt.Println(file)
//	}
//
// # Design Principles
//
// No caching: every Scan walks the filesystem again.
//
// Traversal order: results are returned in walk order (lexical within each
// directory), never globally sorted.
//
// Errors propagate: a missing or unreadable root fails the scan. Nothing is
// collected and skipped.
package fileutil
