package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vshell/vsh/core/vpath"
)

func TestAddGetHas(t *testing.T) {
	fs := New()

	require.NoError(t, fs.Add(vpath.New("/a"), NewDirectory(), false))
	require.NoError(t, fs.Add(vpath.New("/a/f"), NewFile("hi"), false))

	assert.True(t, fs.Has(vpath.New("/a")))
	assert.True(t, fs.Has(vpath.New("/a/f")))
	assert.False(t, fs.Has(vpath.New("/a/g")))

	// Root is always present.
	assert.True(t, fs.Has(vpath.Root()))

	node, ok := fs.Get(vpath.New("/a/f"))
	require.True(t, ok)
	file, ok := node.(*File)
	require.True(t, ok)
	assert.Equal(t, "hi", file.Contents())
}

func TestAddErrors(t *testing.T) {
	newFS := func(t *testing.T) *FileSystem {
		fs := New()
		require.NoError(t, fs.Add(vpath.New("/dir"), NewDirectory(), false))
		require.NoError(t, fs.Add(vpath.New("/file"), NewFile(""), false))
		return fs
	}

	cases := []struct {
		name string
		add  func(fs *FileSystem) error
		want error
	}{
		{
			name: "root target",
			add:  func(fs *FileSystem) error { return fs.Add(vpath.Root(), NewFile(""), false) },
			want: ErrIsRoot,
		},
		{
			name: "missing parent",
			add:  func(fs *FileSystem) error { return fs.Add(vpath.New("/no/where"), NewFile(""), false) },
			want: ErrNotExist,
		},
		{
			name: "parent not a directory",
			add:  func(fs *FileSystem) error { return fs.Add(vpath.New("/file/x"), NewFile(""), false) },
			want: ErrNotDirectory,
		},
		{
			name: "already exists",
			add:  func(fs *FileSystem) error { return fs.Add(vpath.New("/file"), NewFile(""), false) },
			want: ErrExist,
		},
		{
			name: "directory path with file node",
			add:  func(fs *FileSystem) error { return fs.Add(vpath.New("/x/"), NewFile(""), false) },
			want: ErrNotDirectory,
		},
		{
			name: "create parents through a file",
			add:  func(fs *FileSystem) error { return fs.Add(vpath.New("/file/a/b"), NewFile(""), true) },
			want: ErrNotDirectory,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.add(newFS(t))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAddCreateParents(t *testing.T) {
	fs := New()

	require.NoError(t, fs.Add(vpath.New("/a/b/c/f"), NewFile("deep"), true))

	assert.True(t, fs.Has(vpath.New("/a/")))
	assert.True(t, fs.Has(vpath.New("/a/b/")))
	assert.True(t, fs.Has(vpath.New("/a/b/c/f")))
}

func TestGetDirectoryOnlyPath(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Add(vpath.New("/f"), NewFile(""), false))

	// A trailing slash resolves only to directories.
	assert.True(t, fs.Has(vpath.New("/f")))
	assert.False(t, fs.Has(vpath.New("/f/")))
}

func TestRemove(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Add(vpath.New("/a"), NewDirectory(), false))
	require.NoError(t, fs.Add(vpath.New("/a/f"), NewFile(""), false))

	fs.Remove(vpath.New("/a"))
	assert.False(t, fs.Has(vpath.New("/a")))
	assert.False(t, fs.Has(vpath.New("/a/f")), "descendants go with the directory")

	// Removing what's already gone must not panic or error.
	fs.Remove(vpath.New("/a"))
	fs.Remove(vpath.New("/never/was"))
}

func TestCopyIsDeep(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Add(vpath.New("/src"), NewDirectory(), false))
	require.NoError(t, fs.Add(vpath.New("/src/f"), NewFile("original"), false))

	require.NoError(t, fs.Copy(vpath.New("/src"), vpath.New("/dst"), true))

	src, _ := fs.Get(vpath.New("/src/f"))
	src.(*File).SetContents("mutated")

	dst, ok := fs.Get(vpath.New("/dst/f"))
	require.True(t, ok)
	assert.Equal(t, "original", dst.(*File).Contents())
}

func TestCopyErrors(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Add(vpath.New("/dir"), NewDirectory(), false))

	assert.ErrorIs(t, fs.Copy(vpath.New("/dir"), vpath.New("/dir/sub"), true), ErrNested)
	assert.ErrorIs(t, fs.Copy(vpath.New("/ghost"), vpath.New("/dst"), false), ErrNotExist)
	assert.ErrorIs(t, fs.Copy(vpath.New("/dir"), vpath.New("/dst"), false), ErrIsDirectory)
}

func TestMoveTransfersOwnership(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Add(vpath.New("/a"), NewDirectory(), false))
	require.NoError(t, fs.Add(vpath.New("/a/f"), NewFile("payload"), false))

	require.NoError(t, fs.Move(vpath.New("/a/f"), vpath.New("/f")))

	assert.False(t, fs.Has(vpath.New("/a/f")))

	// Same node, not a copy: mutations show through the new path.
	moved, ok := fs.Get(vpath.New("/f"))
	require.True(t, ok)
	moved.(*File).SetContents("changed")
	again, _ := fs.Get(vpath.New("/f"))
	assert.Equal(t, "changed", again.(*File).Contents())
}

func TestMoveErrors(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Add(vpath.New("/dir"), NewDirectory(), false))
	require.NoError(t, fs.Add(vpath.New("/f"), NewFile(""), false))

	assert.ErrorIs(t, fs.Move(vpath.New("/dir"), vpath.New("/dir/in")), ErrNested)
	assert.ErrorIs(t, fs.Move(vpath.New("/ghost"), vpath.New("/dst")), ErrNotExist)
	assert.ErrorIs(t, fs.Move(vpath.New("/f"), vpath.New("/dir")), ErrExist)

	// A failed move leaves the source in place.
	assert.True(t, fs.Has(vpath.New("/f")))
}

func TestDirectoryNames(t *testing.T) {
	dir := NewDirectory()
	require.NoError(t, dir.Add("b", NewFile("")))
	require.NoError(t, dir.Add("a", NewDirectory()))
	require.NoError(t, dir.Add("c", &NullFile{}))

	assert.Equal(t, []string{"a", "b", "c"}, dir.Names())
}

func TestDirectoryNameValidation(t *testing.T) {
	dir := NewDirectory()

	for _, name := range []string{"", ".", "..", "a/b"} {
		assert.ErrorIs(t, dir.Add(name, NewFile("")), ErrBadName, "name %q", name)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "d/", DisplayName("d", NewDirectory()))
	assert.Equal(t, "f", DisplayName("f", NewFile("")))
	assert.Equal(t, "null", DisplayName("null", &NullFile{}))
}

func TestWalkOrderAndPaths(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Add(vpath.New("/b"), NewFile(""), false))
	require.NoError(t, fs.Add(vpath.New("/a"), NewDirectory(), false))
	require.NoError(t, fs.Add(vpath.New("/a/x"), NewFile(""), false))

	var visited []string
	Walk(fs.Root(), vpath.Root(), Visitor{
		Visit: func(p vpath.Path, n Node) {
			visited = append(visited, p.String())
		},
	})

	assert.Equal(t, []string{"/", "/a/", "/a/x", "/b"}, visited)
}

func TestWalkPrePostNesting(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Add(vpath.New("/a/b"), NewDirectory(), true))

	depth, maxDepth := 0, 0
	Walk(fs.Root(), vpath.Root(), Visitor{
		Pre: func(vpath.Path, Node) {
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		},
		Post: func(vpath.Path, Node) { depth-- },
	})

	assert.Equal(t, 0, depth, "pre/post calls must balance")
	assert.Equal(t, 3, maxDepth)
}
