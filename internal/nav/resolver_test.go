package nav_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirhop/internal/model"
	"dirhop/internal/nav"
)

func canonTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func mkdirs(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(p, 0o755))
	}
}

func TestResolvePrecedence(t *testing.T) {
	base := canonTempDir(t)
	bookmarked := filepath.Join(base, "bm", "proj")
	cwd := filepath.Join(base, "parent", "cwd")
	child := filepath.Join(cwd, "proj")
	sibling := filepath.Join(base, "parent", "proj")
	mkdirs(t, bookmarked, child, sibling)

	tests := []struct {
		name      string
		bookmarks []string
		want      string
	}{
		{name: "bookmark beats child and sibling", bookmarks: []string{bookmarked}, want: bookmarked},
		{name: "child beats sibling", bookmarks: nil, want: child},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &nav.Resolver{Cwd: cwd, Bookmarks: tt.bookmarks}
			got, err := r.Resolve("proj")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAncestorSibling(t *testing.T) {
	base := canonTempDir(t)
	cwd := filepath.Join(base, "parent", "cwd")
	sibling := filepath.Join(base, "parent", "proj")
	mkdirs(t, cwd, sibling)

	r := &nav.Resolver{Cwd: cwd}
	got, err := r.Resolve("proj")
	require.NoError(t, err)
	assert.Equal(t, sibling, got)
}

func TestResolveDepthLimit(t *testing.T) {
	base := canonTempDir(t)
	// cwd sits six levels below base, so its ancestors at levels 1..5 are
	// l2..l6 and base itself is only reachable at level 6.
	cwd := filepath.Join(base, "l6", "l5", "l4", "l3", "l2", "l1")
	mkdirs(t, cwd)

	// A match only at level 6 is out of reach.
	mkdirs(t, filepath.Join(base, "zeta"))
	r := &nav.Resolver{Cwd: cwd}
	_, err := r.Resolve("zeta")
	require.Error(t, err)
	assert.True(t, model.IsCode(err, model.CodeNotFound))

	// The same name at level 5 is found.
	atFive := filepath.Join(base, "l6", "zeta")
	mkdirs(t, atFive)
	got, err := r.Resolve("zeta")
	require.NoError(t, err)
	assert.Equal(t, atFive, got)
}

func TestResolveAncestorItself(t *testing.T) {
	base := canonTempDir(t)
	ancestor := filepath.Join(base, "proj")
	cwd := filepath.Join(ancestor, "inner", "deep")
	mkdirs(t, cwd)

	r := &nav.Resolver{Cwd: cwd}
	got, err := r.Resolve("proj")
	require.NoError(t, err)
	assert.Equal(t, ancestor, got)

	// A subdirectory of that ancestor with the same name wins over the
	// ancestor itself at the same level.
	nested := filepath.Join(ancestor, "proj")
	mkdirs(t, nested)
	got, err = r.Resolve("proj")
	require.NoError(t, err)
	assert.Equal(t, nested, got)
}

func TestResolveSkipsDeadBookmark(t *testing.T) {
	base := canonTempDir(t)
	cwd := filepath.Join(base, "cwd")
	child := filepath.Join(cwd, "proj")
	mkdirs(t, child)
	dead := filepath.Join(base, "gone", "proj") // never created

	r := &nav.Resolver{Cwd: cwd, Bookmarks: []string{dead}}
	got, err := r.Resolve("proj")
	require.NoError(t, err)
	assert.Equal(t, child, got)
}

func TestResolveRejectsMultiComponentQueries(t *testing.T) {
	base := canonTempDir(t)
	cwd := filepath.Join(base, "cwd")
	mkdirs(t, filepath.Join(cwd, "a", "b"))

	// Directories matching these queries exist, but the search only ever
	// matches a single path component.
	tests := []string{
		filepath.Join("a", "b"),
		"..",
		".",
		"",
	}

	for _, query := range tests {
		t.Run(fmt.Sprintf("%q", query), func(t *testing.T) {
			r := &nav.Resolver{Cwd: cwd}
			_, err := r.Resolve(query)
			require.Error(t, err)
			assert.True(t, model.IsCode(err, model.CodeNotFound))
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	r := &nav.Resolver{Cwd: canonTempDir(t)}
	_, err := r.Resolve("no-such-directory")
	require.Error(t, err)
	assert.True(t, model.IsCode(err, model.CodeNotFound))
}

func TestUp(t *testing.T) {
	base := canonTempDir(t)
	cwd := filepath.Join(base, "sub")
	mkdirs(t, cwd)

	r := &nav.Resolver{Cwd: cwd}
	got, err := r.Up()
	require.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestUpAtRoot(t *testing.T) {
	r := &nav.Resolver{Cwd: "/"}
	_, err := r.Up()
	require.Error(t, err)
	assert.True(t, model.IsCode(err, model.CodeAtRoot))
}

func TestBackReturnsPriorDirectory(t *testing.T) {
	base := canonTempDir(t)
	a := filepath.Join(base, "a")
	b := filepath.Join(base, "b")
	mkdirs(t, a, b)

	// After navigating from a to b, history leads with a and cwd is b.
	r := &nav.Resolver{Cwd: b, History: []string{a}}
	got, err := r.Back()
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestBackSkipsCurrentDirectory(t *testing.T) {
	base := canonTempDir(t)
	a := filepath.Join(base, "a")
	b := filepath.Join(base, "b")
	mkdirs(t, a, b)

	r := &nav.Resolver{Cwd: b, History: []string{b, a}}
	got, err := r.Back()
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestBackEmptyHistory(t *testing.T) {
	base := canonTempDir(t)

	tests := []struct {
		name    string
		history []string
	}{
		{name: "no entries", history: nil},
		{name: "only the current directory", history: []string{base}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &nav.Resolver{Cwd: base, History: tt.history}
			_, err := r.Back()
			require.Error(t, err)
			assert.True(t, model.IsCode(err, model.CodeEmptyHistory))
		})
	}
}

func TestBackVanishedDirectory(t *testing.T) {
	base := canonTempDir(t)
	gone := filepath.Join(base, "gone") // never created

	r := &nav.Resolver{Cwd: base, History: []string{gone}}
	_, err := r.Back()
	require.Error(t, err)
	assert.True(t, model.IsCode(err, model.CodeNotFound))
}

func TestCurrent(t *testing.T) {
	base := canonTempDir(t)
	r := &nav.Resolver{Cwd: base}
	assert.Equal(t, base, r.Current())
}

func TestSubdirsSortedAndDirsOnly(t *testing.T) {
	base := canonTempDir(t)
	mkdirs(t, filepath.Join(base, "beta"), filepath.Join(base, "alpha"))
	require.NoError(t, os.WriteFile(filepath.Join(base, "afile"), []byte("x"), 0o644))

	r := &nav.Resolver{Cwd: base}
	got, err := r.Subdirs()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(base, "alpha"), filepath.Join(base, "beta")}, got)
}

func TestSubdirsCappedAtSlotAlphabet(t *testing.T) {
	base := canonTempDir(t)
	for i := 0; i < model.MaxSlots+4; i++ {
		mkdirs(t, filepath.Join(base, fmt.Sprintf("d%02d", i)))
	}

	r := &nav.Resolver{Cwd: base}
	got, err := r.Subdirs()
	require.NoError(t, err)
	require.Len(t, got, model.MaxSlots)
	assert.Equal(t, filepath.Join(base, "d00"), got[0])
	assert.Equal(t, filepath.Join(base, fmt.Sprintf("d%02d", model.MaxSlots-1)), got[len(got)-1])
}

func TestSubdirsFollowsSymlinkedDirectories(t *testing.T) {
	base := canonTempDir(t)
	real := filepath.Join(base, "real")
	cwd := filepath.Join(base, "cwd")
	mkdirs(t, real, cwd)
	require.NoError(t, os.Symlink(real, filepath.Join(cwd, "linked")))

	r := &nav.Resolver{Cwd: cwd}
	got, err := r.Subdirs()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(cwd, "linked")}, got)
}
