package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/filetags/internal/registry"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dir != "." {
		t.Errorf("Dir = %q, want %q", cfg.Dir, ".")
	}
	if !cfg.ExcludeHidden {
		t.Error("ExcludeHidden = false, want true")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Units != "MB" {
		t.Errorf("Units = %q, want %q", cfg.Units, "MB")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	path := writeConfig(t, `dir: videos
exclude_hidden: false
log_level: debug
units: KB
tags:
  - name: video
    patterns: ["*.avi", "*.mp4"]
    include: sony
    exclude: [draft, tmp]
  - name: notes
    patterns: "notes*.txt"
    exclude_hidden: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "videos"), cfg.Dir)
	assert.False(t, cfg.ExcludeHidden)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "KB", cfg.Units)

	require.Len(t, cfg.Tags, 2)
	assert.Equal(t, "video", cfg.Tags[0].Name)
	assert.Equal(t, StringList{"*.avi", "*.mp4"}, cfg.Tags[0].Patterns)
	assert.Equal(t, StringList{"sony"}, cfg.Tags[0].Include)
	assert.Equal(t, StringList{"draft", "tmp"}, cfg.Tags[0].Exclude)
	assert.Nil(t, cfg.Tags[0].ExcludeHidden)

	assert.Equal(t, StringList{"notes*.txt"}, cfg.Tags[1].Patterns)
	require.NotNil(t, cfg.Tags[1].ExcludeHidden)
	assert.True(t, *cfg.Tags[1].ExcludeHidden)
}

// TestLoadConfigMissingFile returns defaults when the file is absent
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestLoadConfigPartialFile keeps defaults for absent keys
func TestLoadConfigPartialFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "units: GB\n"))
	require.NoError(t, err)
	assert.Equal(t, "GB", cfg.Units)
	assert.True(t, cfg.ExcludeHidden)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ".", cfg.Dir)
}

func TestLoadConfigAbsoluteDir(t *testing.T) {
	abs := t.TempDir()
	cfg, err := LoadConfig(writeConfig(t, "dir: "+abs+"\n"))
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.Dir)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "malformed yaml", content: "tags: [\n", wantErr: "failed to parse config file"},
		{name: "bad log level", content: "log_level: loud\n", wantErr: "invalid log_level"},
		{name: "bad units", content: "units: PB\n", wantErr: "invalid units"},
		{name: "tag without name", content: "tags:\n  - patterns: ['*.avi']\n", wantErr: "name cannot be empty"},
		{name: "tag without patterns", content: "tags:\n  - name: video\n", wantErr: "at least one pattern"},
		{name: "duplicate tag", content: "tags:\n  - name: a\n    patterns: x\n  - name: a\n    patterns: y\n", wantErr: "duplicate tag"},
		{name: "patterns as mapping", content: "tags:\n  - name: a\n    patterns: {x: y}\n", wantErr: "expected a string or a list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromDir(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("units: B\n"), 0644))
	cfg, err = LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "B", cfg.Units)
	assert.Equal(t, dir, cfg.Dir)
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	dir := "/srv/media"
	level := "trace"
	hidden := false

	cfg.MergeWithFlags(&dir, &level, &hidden, nil)

	assert.Equal(t, "/srv/media", cfg.Dir)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.False(t, cfg.ExcludeHidden)
	assert.Equal(t, "MB", cfg.Units)
}

func newMemRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	memFs := afero.NewMemMapFs()
	for _, f := range []string{"/data/sony/142Camera.avi", "/data/sony/.143Camera.avi", "/data/canon/51Camera.avi", "/data/canon/notes.txt"} {
		require.NoError(t, memFs.MkdirAll(filepath.Dir(f), 0755))
		require.NoError(t, afero.WriteFile(memFs, f, nil, 0644))
	}
	reg, err := registry.New("/data", registry.WithFs(memFs))
	require.NoError(t, err)
	return reg
}

func TestApply(t *testing.T) {
	reg := newMemRegistry(t)
	visible := false
	cfg := DefaultConfig()
	cfg.Tags = []TagConfig{
		{Name: "sony", Patterns: StringList{"*.avi"}, Include: StringList{"sony"}, ExcludeHidden: &visible},
		{Name: "videos", Patterns: StringList{"*.avi"}, Exclude: StringList{"sony"}},
	}

	require.NoError(t, cfg.Apply(reg))
	assert.Equal(t, []string{"sony", "videos"}, reg.ListTags())

	sony, err := reg.Get("sony")
	require.NoError(t, err)
	assert.Len(t, sony, 2)

	videos, err := reg.Get("videos")
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/canon/51Camera.avi"}, videos)
}

func TestApply_DefaultTag(t *testing.T) {
	reg := newMemRegistry(t)
	require.NoError(t, DefaultConfig().Apply(reg))
	assert.Equal(t, []string{registry.DefaultTag}, reg.ListTags())
	assert.Len(t, reg.AllFiles(), 3)
}

func TestApply_PropagatesRegistryErrors(t *testing.T) {
	reg := newMemRegistry(t)
	cfg := DefaultConfig()
	cfg.Tags = []TagConfig{{Name: "x", Patterns: StringList{"*.avi"}, Include: StringList{""}}}

	err := cfg.Apply(reg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrInvalidArgument))
	assert.Contains(t, err.Error(), `tag "x"`)
}
