package fileutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// specialChars are the characters that make a string a glob pattern.
const specialChars = "*?[!"

// HasSpecialChars reports whether s contains any glob special character.
func HasSpecialChars(s string) bool {
	return strings.ContainsAny(s, specialChars)
}

// CompileGlob compiles an fnmatch-style pattern.
// No separators are passed to gobwas/glob so "*" matches across "/".
// Bracket forms fnmatch reads as plain text ("photo[1", "[]]", "[x-]") are
// translated rather than rejected. Only patterns holding NUL or U+FFFD,
// which gobwas cannot represent, fail to compile.
func CompileGlob(pattern string) (glob.Glob, error) {
	translated, ok := translateGlob(pattern)
	if !ok {
		return neverGlob{}, nil
	}
	g, err := glob.Compile(translated)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return g, nil
}

// MatchGlob reports whether name matches pattern.
func MatchGlob(pattern, name string) (bool, error) {
	g, err := CompileGlob(pattern)
	if err != nil {
		return false, err
	}
	return g.Match(name), nil
}

// neverGlob stands in for a pattern with an empty character class.
type neverGlob struct{}

func (neverGlob) Match(string) bool { return false }

// globLiterals are escaped when a character stands for itself. fnmatch has
// no brace alternation or backslash escapes.
const globLiterals = `*?{}[],\`

// translateGlob rewrites an fnmatch pattern in gobwas/glob syntax.
// It returns false when the pattern can never match.
//
// Classes follow fnmatch: "!" first negates, a "]" right after "[" or "[!"
// is a member, "-" first or last is a member, and reversed ranges are
// dropped. A "[" with no closing "]" is a literal.
func translateGlob(pattern string) (string, bool) {
	rs := []rune(pattern)
	var b strings.Builder
	matchable := true

	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch r {
		case '*', '?':
			b.WriteRune(r)
		case '[':
			j := i + 1
			if j < len(rs) && rs[j] == '!' {
				j++
			}
			if j < len(rs) && rs[j] == ']' {
				j++
			}
			for j < len(rs) && rs[j] != ']' {
				j++
			}
			if j >= len(rs) {
				b.WriteString(`\[`)
				continue
			}
			class, ok := translateClass(rs[i+1 : j])
			if !ok {
				matchable = false
			}
			b.WriteString(class)
			i = j
		default:
			writeLiteral(&b, r)
		}
	}
	return b.String(), matchable
}

type runeRange struct {
	lo, hi rune
}

// parseClass splits the body of a bracket expression into members.
func parseClass(body []rune) (members []runeRange, negated bool) {
	if len(body) > 0 && body[0] == '!' {
		negated = true
		body = body[1:]
	}
	for p := 0; p < len(body); {
		if p+2 < len(body) && body[p+1] == '-' {
			if body[p] <= body[p+2] {
				members = append(members, runeRange{body[p], body[p+2]})
			}
			p += 3
			continue
		}
		members = append(members, runeRange{body[p], body[p]})
		p++
	}
	return members, negated
}

// translateClass renders a bracket expression for gobwas, which accepts
// either one range or one character list per class. Positive classes with
// several members become an alternation; negated ones are expanded into a
// single list.
func translateClass(body []rune) (string, bool) {
	members, negated := parseClass(body)
	if len(members) == 0 {
		if negated {
			return "?", true
		}
		return "", false
	}

	if negated {
		if len(members) == 1 {
			return "[!" + string(members[0].lo) + "-" + string(members[0].hi) + "]", true
		}
		var chars []rune
		for _, m := range members {
			for c := m.lo; c <= m.hi; c++ {
				chars = append(chars, c)
			}
		}
		chars = uniqueChars(chars)
		if len(chars) == 1 {
			return "[!" + string(chars[0]) + "-" + string(chars[0]) + "]", true
		}
		return "[!" + charList(chars) + "]", true
	}

	var alts []string
	var singles []rune
	for _, m := range members {
		// A leading "!" would read as negation.
		if m.lo == '!' {
			singles = append(singles, '!')
			m.lo++
			if m.lo > m.hi {
				continue
			}
		}
		if m.lo == m.hi {
			singles = append(singles, m.lo)
			continue
		}
		alts = append(alts, "["+string(m.lo)+"-"+string(m.hi)+"]")
	}

	singles = uniqueChars(singles)
	switch len(singles) {
	case 0:
	case 1:
		var b strings.Builder
		writeLiteral(&b, singles[0])
		alts = append(alts, b.String())
	default:
		alts = append(alts, "["+charList(singles)+"]")
	}

	if len(alts) == 1 {
		return alts[0], true
	}
	return "{" + strings.Join(alts, ",") + "}", true
}

// uniqueChars deduplicates chars, keeping first-seen order except that "-"
// goes last. gobwas reads a "-" after the first list member as a range.
func uniqueChars(chars []rune) []rune {
	seen := make(map[rune]bool, len(chars))
	out := make([]rune, 0, len(chars))
	dash := false
	for _, c := range chars {
		if seen[c] {
			continue
		}
		seen[c] = true
		if c == '-' {
			dash = true
			continue
		}
		out = append(out, c)
	}
	if dash {
		out = append(out, '-')
	}
	return out
}

// charList escapes every member so none of them is read as syntax.
func charList(chars []rune) string {
	var b strings.Builder
	for _, c := range chars {
		b.WriteRune('\\')
		b.WriteRune(c)
	}
	return b.String()
}

func writeLiteral(b *strings.Builder, r rune) {
	if strings.ContainsRune(globLiterals, r) {
		b.WriteRune('\\')
	}
	b.WriteRune(r)
}

// IsHidden reports whether a filename is hidden or an editor lock file.
// This is a name prefix check only; OS hidden attributes are ignored.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~$")
}

// Stem returns the filename of path without its final extension.
// Names consisting only of a leading dot part (".bashrc") and names ending
// in a bare dot ("notes.") have no extension.
func Stem(path string) string {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == name || ext == "." {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
