// Package registry groups files found under a base directory into named tags
// and resolves lookups against them.
//
// A tag is populated by scanning one or more glob patterns, then narrowing the
// result with include substrings (all must appear in the path) and exclude
// substrings (any one removes the path):
//
//	reg, err := registry.New("/data/videos")
//	if err != nil {
//	    return err
//	}
//	if _, err := reg.AddTagged("sony42", []string{"*Camera.avi"},
//	    registry.Include("sony", "42")); err != nil {
//	    return err
//	}
//
// Get resolves a key by the first rule that applies: glob pattern, tag name,
// filename stem, then substring of the full path. Resolve returns the same
// paths together with the rule that fired.
//
// The registry is an in-memory view of one point-in-time scan per tag. It is
// not safe for concurrent use; callers serialize access themselves.
package registry
