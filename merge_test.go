package twconfig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineClamp() Plugin {
	return Plugin{Name: "@tailwindcss/line-clamp", Source: PluginBuiltin}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     *BuildConfiguration
		override *BuildConfiguration
		want     *BuildConfiguration
	}{
		{
			name: "default and prefixed variant",
			base: &BuildConfiguration{
				ContentGlobs:        []string{"./templates/**/*.html"},
				CorePluginOverrides: map[string]bool{"preflight": false},
			},
			override: &BuildConfiguration{
				ContentGlobs:        []string{"./templates/**/*.html"},
				ClassPrefix:         "tw-",
				CorePluginOverrides: map[string]bool{"preflight": false},
				Plugins:             []Plugin{lineClamp()},
			},
			want: &BuildConfiguration{
				ContentGlobs:        []string{"./templates/**/*.html"},
				ClassPrefix:         "tw-",
				CorePluginOverrides: map[string]bool{"preflight": false},
				Plugins:             []Plugin{lineClamp()},
			},
		},
		{
			name:     "empty override prefix keeps base prefix",
			base:     &BuildConfiguration{ClassPrefix: "tw-"},
			override: &BuildConfiguration{ContentGlobs: []string{"./a/*.html"}},
			want: &BuildConfiguration{
				ContentGlobs:        []string{"./a/*.html"},
				ClassPrefix:         "tw-",
				CorePluginOverrides: map[string]bool{},
				Plugins:             []Plugin{},
			},
		},
		{
			name: "core plugins union with override winning",
			base: &BuildConfiguration{
				CorePluginOverrides: map[string]bool{"preflight": false, "container": false},
			},
			override: &BuildConfiguration{
				CorePluginOverrides: map[string]bool{"container": true, "float": false},
			},
			want: &BuildConfiguration{
				ContentGlobs:        []string{},
				CorePluginOverrides: map[string]bool{"preflight": false, "container": true, "float": false},
				Plugins:             []Plugin{},
			},
		},
		{
			name: "sequences keep first-seen order without duplicates",
			base: &BuildConfiguration{
				ContentGlobs: []string{"./a/*.html", "./b/*.html", "./a/*.html"},
				Plugins:      []Plugin{{Name: "@tailwindcss/forms", Source: PluginBuiltin}},
			},
			override: &BuildConfiguration{
				ContentGlobs: []string{"./c/*.html", "./b/*.html"},
				Plugins:      []Plugin{lineClamp(), {Name: "@tailwindcss/forms", Source: PluginBuiltin}},
			},
			want: &BuildConfiguration{
				ContentGlobs:        []string{"./a/*.html", "./b/*.html", "./c/*.html"},
				CorePluginOverrides: map[string]bool{},
				Plugins:             []Plugin{{Name: "@tailwindcss/forms", Source: PluginBuiltin}, lineClamp()},
			},
		},
		{
			name: "nil override",
			base: &BuildConfiguration{ContentGlobs: []string{"./a/*.html"}},
			want: &BuildConfiguration{
				ContentGlobs:        []string{"./a/*.html"},
				CorePluginOverrides: map[string]bool{},
				Plugins:             []Plugin{},
			},
		},
		{
			name: "nil base",
			override: &BuildConfiguration{
				ClassPrefix: "ui-",
			},
			want: &BuildConfiguration{
				ContentGlobs:        []string{},
				ClassPrefix:         "ui-",
				CorePluginOverrides: map[string]bool{},
				Plugins:             []Plugin{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.base, tt.override)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}

			again := Merge(got, tt.override)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("Merge() is not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	base := &BuildConfiguration{
		ContentGlobs:        []string{"./a/*.html"},
		CorePluginOverrides: map[string]bool{"preflight": false},
	}
	override := &BuildConfiguration{
		ContentGlobs:        []string{"./b/*.html"},
		CorePluginOverrides: map[string]bool{"preflight": true},
	}

	merged := Merge(base, override)
	merged.ContentGlobs[0] = "changed"
	merged.CorePluginOverrides["container"] = false

	assert.Equal(t, []string{"./a/*.html"}, base.ContentGlobs)
	assert.Equal(t, map[string]bool{"preflight": false}, base.CorePluginOverrides)
	assert.Equal(t, map[string]bool{"preflight": true}, override.CorePluginOverrides)
}

func TestMergeAll(t *testing.T) {
	got := MergeAll(
		&BuildConfiguration{ContentGlobs: []string{"./a/*.html"}},
		nil,
		&BuildConfiguration{ClassPrefix: "tw-", Plugins: []Plugin{lineClamp()}},
		&BuildConfiguration{ContentGlobs: []string{"./a/*.html", "./b/*.html"}},
	)

	want := &BuildConfiguration{
		ContentGlobs:        []string{"./a/*.html", "./b/*.html"},
		ClassPrefix:         "tw-",
		CorePluginOverrides: map[string]bool{},
		Plugins:             []Plugin{lineClamp()},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeAll() mismatch (-want +got):\n%s", diff)
	}

	empty := MergeAll()
	require.NotNil(t, empty)
	assert.Empty(t, empty.ContentGlobs)
	assert.NotNil(t, empty.CorePluginOverrides)
}

func TestClone(t *testing.T) {
	cfg := &BuildConfiguration{
		ContentGlobs:        []string{"./a/*.html"},
		CorePluginOverrides: map[string]bool{"preflight": false},
		Plugins:             []Plugin{lineClamp()},
	}

	clone := cfg.Clone()
	require.Equal(t, cfg, clone)

	clone.ContentGlobs[0] = "changed"
	clone.CorePluginOverrides["preflight"] = true
	assert.Equal(t, "./a/*.html", cfg.ContentGlobs[0])
	assert.False(t, cfg.CorePluginOverrides["preflight"])
}
