package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vshell/vsh/core/environ"
	"github.com/vshell/vsh/core/vfs"
	"github.com/vshell/vsh/core/vpath"
)

// globFS builds the tree the glob tests run against:
//
//	/home/user/a1, a2, aa, a, notes.txt, .hidden
//	/home/user/docs/{report.txt}
//	/home/user/src/{main.go}
//	/etc/motd
func globFS(t *testing.T) *vfs.FileSystem {
	t.Helper()
	fs := vfs.New()
	for _, file := range []string{
		"/home/user/a1",
		"/home/user/a2",
		"/home/user/aa",
		"/home/user/a",
		"/home/user/notes.txt",
		"/home/user/.hidden",
		"/home/user/docs/report.txt",
		"/home/user/src/main.go",
		"/etc/motd",
	} {
		require.NoError(t, fs.Add(vpath.New(file), vfs.NewFile(""), true))
	}
	return fs
}

func glob(t *testing.T, fs *vfs.FileSystem, token string) ([]string, error) {
	t.Helper()
	marked, err := Expand(token, environ.NewMapEnv())
	require.NoError(t, err)

	g := &Globber{FS: fs, Cwd: vpath.New("/home/user/")}
	return g.Expand(marked)
}

func TestGlob(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  []string
	}{
		{"question matches one char", "a?", []string{"a1", "a2", "aa"}},
		{"question needs a char", "?", []string{"a"}},
		{"star matches zero or more", "a*", []string{"a", "a1", "a2", "aa"}},
		{"star with suffix", "*.txt", []string{"notes.txt"}},
		{"star excludes hidden", "*", []string{"a", "a1", "a2", "aa", "docs", "notes.txt", "src"}},
		{"dot pattern matches hidden", ".*", []string{".hidden"}},
		{"trailing slash keeps directories only", "*/", []string{"docs/", "src/"}},
		{"multi segment", "*/*.txt", []string{"docs/report.txt"}},
		{"literal middle segment", "*/report.txt", []string{"docs/report.txt"}},
		{"absolute pattern", "/etc/*", []string{"/etc/motd"}},
		{"absolute first segment glob", "/e?c/motd", []string{"/etc/motd"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := glob(t, globFS(t), tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGlobNoZeroLengthQuestion(t *testing.T) {
	// "a?" must not match the bare "a".
	got, err := glob(t, globFS(t), "a?")
	require.NoError(t, err)
	assert.NotContains(t, got, "a")
}

func TestGlobNoMatchesIsError(t *testing.T) {
	_, err := glob(t, globFS(t), "zzz*")
	assert.ErrorIs(t, err, ErrNoMatches)

	// The message shows the user-visible pattern, not internal markers.
	assert.Contains(t, err.Error(), "zzz*")
}

func TestGlobLiteralPassesThrough(t *testing.T) {
	// A token with no markers is returned unchanged, even when it names
	// nothing on the filesystem. Call sites depend on this asymmetry.
	got, err := glob(t, globFS(t), "no/such/file")
	require.NoError(t, err)
	assert.Equal(t, []string{"no/such/file"}, got)
}

func TestGlobEscapedWildcardLiteral(t *testing.T) {
	got, err := glob(t, globFS(t), `a\*`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a*"}, got)
}

func TestGlobIntermediateSegmentsAreDirectories(t *testing.T) {
	// "a1" is a file; it cannot be descended into.
	_, err := glob(t, globFS(t), "a?/x*")
	assert.ErrorIs(t, err, ErrNoMatches)
}
