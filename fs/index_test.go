package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/gmdocs"
	"github.com/fwojciec/gmdocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterIndex(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/manual")
	ref := "GameMaker_Language/GML_Reference/"

	tests := []struct {
		name    string
		entries map[string]string
		want    []string
	}{
		{
			name:    "keeps lowercase reference entries",
			entries: map[string]string{"draw_self": ref + "Drawing/draw_self.html"},
			want:    []string{filepath.Join(root, "GameMaker_Language", "GML_Reference", "Drawing", "draw_self.htm")},
		},
		{
			name:    "drops uppercase keywords",
			entries: map[string]string{"Draw_Self": ref + "Drawing/draw_self.html"},
			want:    []string{},
		},
		{
			name:    "drops uppercase file names",
			entries: map[string]string{"drawing": ref + "Drawing/Drawing.html"},
			want:    []string{},
		},
		{
			name:    "uppercase directories are fine",
			entries: map[string]string{"x": ref + "Drawing/x"},
			want:    []string{filepath.Join(root, "GameMaker_Language", "GML_Reference", "Drawing", "x.htm")},
		},
		{
			name:    "drops pages outside the reference",
			entries: map[string]string{"room": "GameMaker_Language/GML_Overview/room.html"},
			want:    []string{},
		},
		{
			name: "deduplicates and sorts",
			entries: map[string]string{
				"b":       ref + "b.html",
				"a":       ref + "a.html",
				"a_alias": ref + "a.html",
			},
			want: []string{
				filepath.Join(root, "GameMaker_Language", "GML_Reference", "a.htm"),
				filepath.Join(root, "GameMaker_Language", "GML_Reference", "b.htm"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.FilterIndex(root, tt.entries))
		})
	}
}

func TestIndexSource_Pages(t *testing.T) {
	t.Parallel()

	t.Run("reads the index at the root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		index := `{"draw_self": "GameMaker_Language/GML_Reference/Drawing/draw_self.html"}`
		require.NoError(t, os.WriteFile(filepath.Join(root, fs.DefaultIndexFile), []byte(index), 0644))

		pages, err := fs.NewIndexSource(root, "").Pages(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "GameMaker_Language", "GML_Reference", "Drawing", "draw_self.htm"),
		}, pages)
	})

	t.Run("returns not found for a missing index", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewIndexSource(t.TempDir(), "").Pages(context.Background())

		assert.Equal(t, gmdocs.ENOTFOUND, gmdocs.ErrorCode(err))
	})

	t.Run("returns invalid for malformed json", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "index.json"), []byte("{"), 0644))

		_, err := fs.NewIndexSource(root, "index.json").Pages(context.Background())

		assert.Equal(t, gmdocs.EINVALID, gmdocs.ErrorCode(err))
	})
}
