package twconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractClasses(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantCol []int
	}{
		{
			name:    "double quotes",
			line:    `<div class="tw-flex tw-p-4">`,
			want:    []string{"tw-flex tw-p-4"},
			wantCol: []int{13},
		},
		{
			name:    "single quotes",
			line:    `<span class='icon nav-item-icon'>`,
			want:    []string{"icon nav-item-icon"},
			wantCol: []int{14},
		},
		{
			name:    "leading spaces in value",
			line:    `<a class="  underline">`,
			want:    []string{"  underline"},
			wantCol: []int{13},
		},
		{
			name:    "jsx className",
			line:    `  return <p className="text-sm">{x}</p>`,
			want:    []string{"text-sm"},
			wantCol: []int{24},
		},
		{
			name:    "templ braces",
			line:    `<div class={ "tw-grid gap-2" }>`,
			want:    []string{"tw-grid gap-2"},
			wantCol: []int{15},
		},
		{
			name:    "templ.Classes",
			line:    `<div class={ templ.Classes("btn", active) }>`,
			want:    []string{"btn"},
			wantCol: []int{29},
		},
		{
			name: "two elements",
			line: `<b class="a"></b><i class="b c"></i>`,
			want: []string{"a", "b c"},
		},
		{
			name: "data-class is not a class",
			line: `<div data-class="x">`,
			want: nil,
		},
		{
			name: "empty attribute",
			line: `<div class="">`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractClasses(tt.line, 7, "index.html")

			var values []string
			var cols []int
			for _, ref := range refs {
				assert.Equal(t, 7, ref.Line)
				assert.Equal(t, "index.html", ref.File)
				values = append(values, ref.Value)
				cols = append(cols, ref.Column)
			}
			assert.Equal(t, tt.want, values)
			if tt.wantCol != nil {
				assert.Equal(t, tt.wantCol, cols)
			}
		})
	}
}

func TestScanClasses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	content := "<html>\n  <body class=\"tw-bg-white\">\n    <p>plain</p>\n    <p class='tw-text-sm'>x</p>\n  </body>\n</html>\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	refs, err := scanClasses(path)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, classRef{File: path, Line: 2, Column: 16, Value: "tw-bg-white"}, refs[0])
	assert.Equal(t, 4, refs[1].Line)

	_, err = scanClasses(filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		class string
		want  bool
	}{
		{class: "tw-flex", want: true},
		{class: "hover:tw-underline", want: true},
		{class: "md:hover:tw-p-4", want: true},
		{class: "-tw-mt-2", want: true},
		{class: "!tw-font-bold", want: true},
		{class: "md:!tw-hidden", want: true},
		{class: "flex", want: false},
		{class: "hover:underline", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			assert.Equal(t, tt.want, hasPrefix(tt.class, "tw-"))
		})
	}
}
