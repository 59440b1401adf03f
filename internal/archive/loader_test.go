package archive

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "git.home.luguber.info/inful/doccsite/internal/errors"
)

func TestLoadAllArchives(t *testing.T) {
	a := writeBundle(t, "First")
	b := writeBundle(t, "Second")

	archives, err := NewLoader().Load([]string{a, b})
	require.NoError(t, err)
	require.Len(t, archives, 2)
	assert.Equal(t, "First", archives[0].Name())
	assert.Equal(t, "Second", archives[1].Name())
}

// Loading is all-or-nothing: one bad path fails the run and names the path.
func TestLoadFailsFastOnBadPath(t *testing.T) {
	good := writeBundle(t, "Good")
	bad := filepath.Join(t.TempDir(), "not-an-archive")

	archives, err := NewLoader().Load([]string{good, bad})
	require.Error(t, err)
	assert.Nil(t, archives)

	var ee *xerrors.ExportError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, xerrors.CategoryArchive, ee.Category)
	assert.Equal(t, bad, ee.Context["path"])
}

func TestLoadEmpty(t *testing.T) {
	archives, err := NewLoader().Load(nil)
	require.NoError(t, err)
	assert.Empty(t, archives)
}
