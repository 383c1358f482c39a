package registry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/filetags/internal/fileutil"
	"github.com/spf13/afero"
)

const (
	// DefaultTag is the tag populated by AddAll with the catch-all pattern.
	DefaultTag = "all"
	// DefaultPattern is the catch-all pattern behind DefaultTag.
	DefaultPattern = "*.*"
)

// tagSpecialChars may not appear in a tag derived from a pattern.
const tagSpecialChars = "*?[]!"

// Logger is the subset of logging the registry needs.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
}

type noopLogger struct{}

func (noopLogger) LogTrace(string) {}
func (noopLogger) LogDebug(string) {}

// FilterRecord holds the inputs that produced a tag's file set.
// It is kept for introspection only and is never replayed.
type FilterRecord struct {
	Patterns      []string  // Glob patterns scanned, in order
	Include       []string  // Include substrings applied, in order
	Exclude       []string  // Exclude substrings applied, in order
	ExcludeHidden bool      // Hidden-file policy used for the scan
	ScanID        string    // Unique id of the add call, for log correlation
	ScannedAt     time.Time // When the scan ran
}

func (fr FilterRecord) clone() FilterRecord {
	out := fr
	out.Patterns = append([]string(nil), fr.Patterns...)
	out.Include = append([]string(nil), fr.Include...)
	out.Exclude = append([]string(nil), fr.Exclude...)
	return out
}

// entry is everything stored for one tag. Keeping files and filter history
// in a single value means add and remove always update them together.
type entry struct {
	files  []string
	record FilterRecord
}

// Registry maps tags to filtered file sets found under one base directory.
// A Registry is not safe for concurrent use.
type Registry struct {
	baseDir       string
	excludeHidden bool
	matcher       *fileutil.Matcher
	logger        Logger

	entries map[string]*entry
	order   []string // tags in first-added order
}

type settings struct {
	fs            afero.Fs
	logger        Logger
	excludeHidden bool
}

// Option configures a Registry.
type Option func(*settings)

// WithExcludeHidden sets the default hidden-file policy (true if not given).
func WithExcludeHidden(exclude bool) Option {
	return func(s *settings) { s.excludeHidden = exclude }
}

// WithFs sets the filesystem scans and size lookups read from.
func WithFs(fs afero.Fs) Option {
	return func(s *settings) { s.fs = fs }
}

// WithLogger sets the logger for scan diagnostics.
func WithLogger(l Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a registry rooted at baseDir. The directory is canonicalized
// once here and reused by every scan.
func New(baseDir string, opts ...Option) (*Registry, error) {
	s := settings{
		fs:            afero.NewOsFs(),
		logger:        noopLogger{},
		excludeHidden: true,
	}
	for _, opt := range opts {
		opt(&s)
	}

	matcher := fileutil.NewMatcher(s.fs)
	root, err := matcher.Canonicalize(baseDir)
	if err != nil {
		return nil, newError(KindIO, "new", baseDir, err)
	}

	return &Registry{
		baseDir:       root,
		excludeHidden: s.excludeHidden,
		matcher:       matcher,
		logger:        s.logger,
		entries:       make(map[string]*entry),
	}, nil
}

// BaseDir returns the canonical base directory.
func (r *Registry) BaseDir() string {
	return r.baseDir
}

type addSettings struct {
	include       []string
	exclude       []string
	excludeHidden *bool
}

// AddOption configures a single add call.
type AddOption func(*addSettings)

// Include keeps only paths containing every given substring.
func Include(substrs ...string) AddOption {
	return func(a *addSettings) { a.include = append(a.include, substrs...) }
}

// Exclude drops paths containing any given substring.
func Exclude(substrs ...string) AddOption {
	return func(a *addSettings) { a.exclude = append(a.exclude, substrs...) }
}

// ExcludeHidden overrides the registry's hidden-file policy for one call.
func ExcludeHidden(exclude bool) AddOption {
	return func(a *addSettings) { a.excludeHidden = &exclude }
}

// AddTagged scans every pattern under the base directory and stores the
// concatenated results under tag, replacing any previous file set and filter
// record. Includes are then applied in order, then excludes in order.
// On error the registry is left unchanged.
func (r *Registry) AddTagged(tag string, patterns []string, opts ...AddOption) (*Registry, error) {
	if strings.TrimSpace(tag) == "" {
		return r, newError(KindInvalidArgument, "add", tag, fmt.Errorf("tag name is empty"))
	}
	if len(patterns) == 0 {
		return r, newError(KindInvalidArgument, "add", tag, fmt.Errorf("no patterns given"))
	}

	var a addSettings
	for _, opt := range opts {
		opt(&a)
	}
	excludeHidden := r.excludeHidden
	if a.excludeHidden != nil {
		excludeHidden = *a.excludeHidden
	}

	for _, p := range patterns {
		if p == "" {
			return r, newError(KindInvalidArgument, "add", tag, fmt.Errorf("empty pattern"))
		}
		if _, err := fileutil.CompileGlob(p); err != nil {
			return r, newError(KindInvalidArgument, "add", p, err)
		}
	}
	for _, s := range append(append([]string(nil), a.include...), a.exclude...) {
		if s == "" {
			return r, newError(KindInvalidArgument, "add", tag, fmt.Errorf("empty include/exclude string"))
		}
	}

	staged := &entry{
		files: make([]string, 0),
		record: FilterRecord{
			Patterns:      append([]string(nil), patterns...),
			Include:       make([]string, 0, len(a.include)),
			Exclude:       make([]string, 0, len(a.exclude)),
			ExcludeHidden: excludeHidden,
			ScanID:        uuid.New().String(),
			ScannedAt:     time.Now(),
		},
	}

	for _, p := range patterns {
		found, err := r.matcher.Scan(r.baseDir, p, excludeHidden)
		if err != nil {
			return r, newError(KindIO, "add", r.baseDir, err)
		}
		r.logger.LogTrace(fmt.Sprintf("scan %s: pattern %q matched %d files", staged.record.ScanID, p, len(found)))
		staged.files = append(staged.files, found...)
	}

	for _, s := range a.include {
		staged.include(s)
	}
	for _, s := range a.exclude {
		staged.exclude(s)
	}

	r.commit(tag, staged)
	r.logger.LogDebug(fmt.Sprintf("tag %q: %d files (patterns %v, include %v, exclude %v, scan %s)",
		tag, len(staged.files), staged.record.Patterns, staged.record.Include, staged.record.Exclude, staged.record.ScanID))

	return r, nil
}

// AddAll populates a tag without naming it:
//   - "", "all" or "*.*" fill the default tag "all" with "*.*"
//   - "*.<ext>" fills the tag "<ext>" with "*.<ext>"
//
// Extensions containing pattern characters are rejected; such tags must be
// named explicitly with AddTagged.
func (r *Registry) AddAll(pattern string, opts ...AddOption) (*Registry, error) {
	tag, p, err := tagForPattern(pattern)
	if err != nil {
		return r, err
	}
	return r.AddTagged(tag, []string{p}, opts...)
}

func tagForPattern(pattern string) (string, string, error) {
	switch pattern {
	case "", DefaultTag, DefaultPattern:
		return DefaultTag, DefaultPattern, nil
	}
	if !strings.HasPrefix(pattern, "*.") {
		return "", "", newError(KindInvalidArgument, "add", pattern,
			fmt.Errorf("expected %q or a pattern of the form *.<ext>", DefaultPattern))
	}
	ext := pattern[2:]
	if ext == "" || strings.ContainsAny(ext, tagSpecialChars) {
		return "", "", newError(KindInvalidArgument, "add", pattern,
			fmt.Errorf("cannot derive a tag from %q, name the tag explicitly", pattern))
	}
	return ext, pattern, nil
}

func (e *entry) include(s string) {
	kept := e.files[:0]
	for _, f := range e.files {
		if strings.Contains(f, s) {
			kept = append(kept, f)
		}
	}
	e.files = kept
	e.record.Include = append(e.record.Include, s)
}

func (e *entry) exclude(s string) {
	kept := e.files[:0]
	for _, f := range e.files {
		if !strings.Contains(f, s) {
			kept = append(kept, f)
		}
	}
	e.files = kept
	e.record.Exclude = append(e.record.Exclude, s)
}

func (r *Registry) commit(tag string, e *entry) {
	if _, exists := r.entries[tag]; !exists {
		r.order = append(r.order, tag)
	}
	r.entries[tag] = e
}

// Remove deletes a tag's file set and filter record.
func (r *Registry) Remove(tag string) error {
	if _, ok := r.entries[tag]; !ok {
		return newError(KindNotFound, "remove", tag, nil)
	}
	delete(r.entries, tag)
	for i, t := range r.order {
		if t == tag {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListTags returns tags in first-added order.
func (r *Registry) ListTags() []string {
	return append([]string{}, r.order...)
}

// Files returns a copy of a tag's files in stored order. Unlike Get it
// never applies the pattern, stem or loose rules.
func (r *Registry) Files(tag string) ([]string, error) {
	e, ok := r.entries[tag]
	if !ok {
		return nil, newError(KindNotFound, "files", tag, nil)
	}
	return append([]string{}, e.files...), nil
}

// Record returns a copy of a tag's filter record.
func (r *Registry) Record(tag string) (FilterRecord, error) {
	e, ok := r.entries[tag]
	if !ok {
		return FilterRecord{}, newError(KindNotFound, "record", tag, nil)
	}
	return e.record.clone(), nil
}

// AllFiles returns the union of every tag's files, deduplicated and sorted.
func (r *Registry) AllFiles() []string {
	seen := make(map[string]struct{})
	all := make([]string, 0)
	for _, tag := range r.order {
		for _, f := range r.entries[tag].files {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			all = append(all, f)
		}
	}
	sort.Strings(all)
	return all
}
