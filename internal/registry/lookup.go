package registry

import (
	"strings"

	"github.com/harrison/filetags/internal/fileutil"
)

// MatchKind tells which lookup rule produced a Resolution.
type MatchKind int

const (
	// MatchPattern means the key held glob characters.
	MatchPattern MatchKind = iota
	// MatchTag means the key named a registered tag.
	MatchTag
	// MatchStem means the key equalled one or more filename stems.
	MatchStem
	// MatchLoose means the key was found as a substring of full paths.
	MatchLoose
)

// String returns the string representation of MatchKind.
func (k MatchKind) String() string {
	switch k {
	case MatchPattern:
		return "pattern"
	case MatchTag:
		return "tag"
	case MatchStem:
		return "stem"
	case MatchLoose:
		return "loose"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of a lookup.
type Resolution struct {
	Key   string
	Kind  MatchKind
	Paths []string
}

// Get returns the paths a key resolves to. See Resolve for the rules.
func (r *Registry) Get(key string) ([]string, error) {
	res, err := r.Resolve(key)
	if err != nil {
		return nil, err
	}
	return res.Paths, nil
}

// Resolve applies the first rule that fits key:
//  1. key has glob characters: "*"+key is matched against AllFiles. Always
//     terminal, even with no matches.
//  2. key is a tag: that tag's files in stored order, even if empty.
//  3. key equals filename stems: those files, deduplicated and sorted.
//  4. otherwise: every managed path containing key, deduplicated and sorted.
func (r *Registry) Resolve(key string) (Resolution, error) {
	if fileutil.HasSpecialChars(key) {
		paths, err := r.Filter("*" + key)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Key: key, Kind: MatchPattern, Paths: paths}, nil
	}

	if e, ok := r.entries[key]; ok {
		return Resolution{Key: key, Kind: MatchTag, Paths: append([]string{}, e.files...)}, nil
	}

	all := r.AllFiles()

	stems := make([]string, 0)
	for _, f := range all {
		if fileutil.Stem(f) == key {
			stems = append(stems, f)
		}
	}
	if len(stems) > 0 {
		return Resolution{Key: key, Kind: MatchStem, Paths: stems}, nil
	}

	loose := make([]string, 0)
	for _, f := range all {
		if strings.Contains(f, key) {
			loose = append(loose, f)
		}
	}
	return Resolution{Key: key, Kind: MatchLoose, Paths: loose}, nil
}

// Filter returns the managed files whose full path matches pattern.
// "*" in pattern also matches path separators.
func (r *Registry) Filter(pattern string) ([]string, error) {
	g, err := fileutil.CompileGlob(pattern)
	if err != nil {
		return nil, newError(KindInvalidArgument, "get", pattern, err)
	}

	matched := make([]string, 0)
	for _, f := range r.AllFiles() {
		if g.Match(f) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}
