package registry

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	reg, _ := newFixtureRegistry(t)
	mustAdd(t, reg, "canon", []string{"*Camera.avi"}, Include("canon"))
	mustAdd(t, reg, "videos", []string{"*.avi", "*.mp4"})
	mustAdd(t, reg, "notes", []string{"notes*.txt"})

	tests := []struct {
		name     string
		key      string
		wantKind MatchKind
		want     []string
	}{
		{
			name:     "pattern key",
			key:      "*notes?.txt",
			wantKind: MatchPattern,
			want:     []string{"notes/notes1.txt", "notes/notes2.txt"},
		},
		{
			name:     "pattern key matches anywhere in the path",
			key:      "notes?.txt",
			wantKind: MatchPattern,
			want:     []string{"notes/notes1.txt", "notes/notes2.txt"},
		},
		{
			name:     "character class key",
			key:      "[45]?Camera.avi",
			wantKind: MatchPattern,
			want: []string{
				"canon/40Camera.avi", "canon/51Camera.avi",
				"panasonic/143Camera.avi", "panasonic/151Camera.avi",
				"sony/142Camera.avi", "sony/143Camera.avi",
			},
		},
		{
			name:     "tag",
			key:      "canon",
			wantKind: MatchTag,
			want:     []string{"canon/40Camera.avi", "canon/51Camera.avi"},
		},
		{
			name:     "stem across directories",
			key:      "143Camera",
			wantKind: MatchStem,
			want:     []string{"panasonic/143Camera.avi", "sony/143Camera.avi"},
		},
		{
			name:     "loose substring",
			key:      "20",
			wantKind: MatchLoose,
			want:     []string{"panasonic2/201Camera.avi", "panasonic2/202.mp4"},
		},
		{
			name:     "loose with no match",
			key:      "nikon",
			wantKind: MatchLoose,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := reg.Resolve(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, res.Kind)
			assert.Equal(t, tt.key, res.Key)
			assert.Equal(t, tt.want, relPaths(res.Paths))
		})
	}
}

func TestResolve_PatternRuleIsTerminal(t *testing.T) {
	reg, _ := newFixtureRegistry(t)
	mustAdd(t, reg, "videos", []string{"*.avi", "*.mp4"})

	for _, key := range []string{"*.a?2", "143Camera!", "?43Camera"} {
		t.Run(key, func(t *testing.T) {
			res, err := reg.Resolve(key)
			require.NoError(t, err)
			assert.Equal(t, MatchPattern, res.Kind)
			assert.NotNil(t, res.Paths)
			assert.Empty(t, res.Paths)
		})
	}
}

func TestResolve_EmptyTagShortCircuits(t *testing.T) {
	reg, _ := newFixtureRegistry(t)
	mustAdd(t, reg, "videos", []string{"*.avi"})
	// A registered tag with no files still wins over the stem rule.
	mustAdd(t, reg, "143Camera", []string{"*.none"})

	res, err := reg.Resolve("143Camera")
	require.NoError(t, err)
	assert.Equal(t, MatchTag, res.Kind)
	assert.Empty(t, res.Paths)

	require.NoError(t, reg.Remove("143Camera"))
	res, err = reg.Resolve("143Camera")
	require.NoError(t, err)
	assert.Equal(t, MatchStem, res.Kind)
	assert.Len(t, res.Paths, 2)
}

func TestResolve_TagKeepsStoredOrder(t *testing.T) {
	reg, _ := newFixtureRegistry(t)
	mustAdd(t, reg, "mixed", []string{"*.mp4", "*.avi", "*.mp4"})

	paths := mustGet(t, reg, "mixed")
	require.Len(t, paths, 9)
	assert.Equal(t, "/data/panasonic2/202.mp4", paths[0])
	assert.Equal(t, "/data/panasonic2/202.mp4", paths[8])

	// Mutating the result must not reach the registry.
	paths[0] = "changed"
	assert.Equal(t, "/data/panasonic2/202.mp4", mustGet(t, reg, "mixed")[0])
}

func TestResolve_StemIsDeduplicated(t *testing.T) {
	reg, _ := newFixtureRegistry(t)
	mustAdd(t, reg, "a", []string{"143*"})
	mustAdd(t, reg, "b", []string{"*Camera.avi"})

	assert.Equal(t, []string{"/data/panasonic/143Camera.avi", "/data/sony/143Camera.avi"}, mustGet(t, reg, "143Camera"))
}

func TestResolve_BracketKeysNeverFail(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll("/d/a", 0755))
	for _, name := range []string{"photo[1.jpg", "]b.txt", "x-y.txt", "photo2.jpg"} {
		require.NoError(t, afero.WriteFile(memFs, "/d/a/"+name, nil, 0644))
	}
	reg, err := New("/d", WithFs(memFs))
	require.NoError(t, err)
	mustAdd(t, reg, "files", []string{"*"})

	tests := []struct {
		key  string
		want []string
	}{
		{key: "photo[1.jpg", want: []string{"/d/a/photo[1.jpg"}},
		{key: "[]]b.txt", want: []string{"/d/a/]b.txt"}},
		{key: "[!]]b.txt", want: []string{}},
		{key: "[x-]-y.txt", want: []string{"/d/a/x-y.txt"}},
		{key: "photo[12].jpg", want: []string{"/d/a/photo2.jpg"}},
		{key: "[z-a].txt", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			res, err := reg.Resolve(tt.key)
			require.NoError(t, err)
			assert.Equal(t, MatchPattern, res.Kind)
			assert.Equal(t, tt.want, res.Paths)
		})
	}
}

func TestAddTagged_UnclosedBracketPattern(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll("/d", 0755))
	require.NoError(t, afero.WriteFile(memFs, "/d/photo[1.jpg", nil, 0644))
	require.NoError(t, afero.WriteFile(memFs, "/d/photo1.jpg", nil, 0644))

	reg, err := New("/d", WithFs(memFs))
	require.NoError(t, err)
	mustAdd(t, reg, "t", []string{"photo[1*"})

	files, err := reg.Files("t")
	require.NoError(t, err)
	assert.Equal(t, []string{"/d/photo[1.jpg"}, files)
}

func TestFilter(t *testing.T) {
	reg, _ := newFixtureRegistry(t)
	mustAdd(t, reg, "all", []string{"*.*"})

	got, err := reg.Filter("*.mp4")
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/panasonic2/202.mp4"}, got)

	got, err = reg.Filter("/data/canon/*")
	require.NoError(t, err)
	assert.Equal(t, []string{"canon/40Camera.avi", "canon/51Camera.avi", "canon/notes.txt"}, relPaths(got))
}

func TestMatchKindString(t *testing.T) {
	assert.Equal(t, "pattern", MatchPattern.String())
	assert.Equal(t, "tag", MatchTag.String())
	assert.Equal(t, "stem", MatchStem.String())
	assert.Equal(t, "loose", MatchLoose.String())
	assert.Equal(t, "unknown", MatchKind(9).String())
}
