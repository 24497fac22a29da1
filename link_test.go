package gmdocs_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/gmdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinker(t *testing.T) (*gmdocs.Linker, string) {
	t.Helper()
	root := t.TempDir()
	l, err := gmdocs.NewLinker(root, "https://manual.example.com/")
	require.NoError(t, err)
	return l, root
}

func TestNewLinker(t *testing.T) {
	t.Parallel()

	t.Run("rejects relative base URL", func(t *testing.T) {
		t.Parallel()

		_, err := gmdocs.NewLinker(t.TempDir(), "manual/")

		assert.Equal(t, gmdocs.EINVALID, gmdocs.ErrorCode(err))
	})
}

func TestLinker_PageLink(t *testing.T) {
	t.Parallel()

	l, root := newLinker(t)

	path := filepath.Join(root, "GameMaker_Language", "GML_Reference", "draw_self.htm")

	assert.Equal(t, "https://manual.example.com/GameMaker_Language/GML_Reference/draw_self.htm", l.PageLink(path))
}

func TestLinker_Resolve(t *testing.T) {
	t.Parallel()

	l, root := newLinker(t)
	pageDir := filepath.Join(root, "GameMaker_Language", "GML_Reference", "Drawing")

	tests := []struct {
		name string
		dest string
		want string
	}{
		{"sibling page", "draw_sprite.htm", "https://manual.example.com/GameMaker_Language/GML_Reference/Drawing/draw_sprite.htm"},
		{"parent directory", "../Asset_Management/Sprites.htm", "https://manual.example.com/GameMaker_Language/GML_Reference/Asset_Management/Sprites.htm"},
		{"keeps fragment", "../Colour.htm#c_red", "https://manual.example.com/GameMaker_Language/GML_Reference/Colour.htm#c_red"},
		{"root relative", "/assets/Images/logo.png", "https://manual.example.com/assets/Images/logo.png"},
		{"escapes spaces", "My Page.htm", "https://manual.example.com/GameMaker_Language/GML_Reference/Drawing/My%20Page.htm"},
		{"absolute URL unchanged", "https://gamemaker.io/", "https://gamemaker.io/"},
		{"fragment only unchanged", "#top", "#top"},
		{"escaping root unchanged", "../../../../outside.htm", "../../../../outside.htm"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, l.Resolve(pageDir, tt.dest))
		})
	}
}
