package vfs

import (
	"github.com/vshell/vsh/core/vpath"
)

// FileSystem exposes path-addressed operations over a node tree. It owns
// exactly one root directory; every other node is owned transitively
// through it.
//
// The pipeline that uses it is synchronous, so FileSystem performs no
// locking of its own. A concurrent caller must serialize mutations
// externally.
type FileSystem struct {
	root *Directory
}

// New returns a filesystem with an empty root.
func New() *FileSystem {
	return &FileSystem{root: NewDirectory()}
}

// NewWithRoot returns a filesystem over a reconstructed tree, e.g. one
// decoded from a snapshot.
func NewWithRoot(root *Directory) *FileSystem {
	return &FileSystem{root: root}
}

// Root returns the root directory.
func (f *FileSystem) Root() *Directory {
	return f.root
}

// lookup resolves the path's segments without honoring the directory
// flag. Used internally where the raw node is needed regardless of the
// path form.
func (f *FileSystem) lookup(segs []string) (Node, bool) {
	var node Node = f.root
	for _, seg := range segs {
		dir, ok := node.(*Directory)
		if !ok {
			return nil, false
		}
		child, ok := dir.Child(seg)
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// Get resolves a path to its node. The root is always present. A
// directory-flagged path (trailing slash) resolves only to a directory; a
// file at that name is treated as absent for that path form.
func (f *FileSystem) Get(p vpath.Path) (Node, bool) {
	node, ok := f.lookup(p.Segments())
	if !ok {
		return nil, false
	}
	if p.IsDir() {
		if _, isDir := node.(*Directory); !isDir {
			return nil, false
		}
	}
	return node, true
}

// Has reports whether the path resolves to a node.
func (f *FileSystem) Has(p vpath.Path) bool {
	_, ok := f.Get(p)
	return ok
}

// mkdirAll creates the directory chain down to p, erroring if an existing
// intermediate node is not a directory.
func (f *FileSystem) mkdirAll(p vpath.Path) (*Directory, error) {
	dir := f.root
	for _, seg := range p.Segments() {
		child, ok := dir.Child(seg)
		if !ok {
			next := NewDirectory()
			if err := dir.Add(seg, next); err != nil {
				return nil, pathErr("mkdir", p, err)
			}
			dir = next
			continue
		}
		next, isDir := child.(*Directory)
		if !isDir {
			return nil, pathErr("mkdir", p, ErrNotDirectory)
		}
		dir = next
	}
	return dir, nil
}

// Add places a node at the path. It fails if the path is the root, if the
// parent is missing (unless createParents is set), if the parent is not a
// directory, if a node already exists there, or if the path form demands a
// directory but the node is not one.
func (f *FileSystem) Add(p vpath.Path, n Node, createParents bool) error {
	if p.IsRoot() {
		return pathErr("add", p, ErrIsRoot)
	}
	if p.IsDir() {
		if _, isDir := n.(*Directory); !isDir {
			return pathErr("add", p, ErrNotDirectory)
		}
	}

	parent := p.Parent()
	var dir *Directory
	parentNode, ok := f.lookup(parent.Segments())
	switch {
	case !ok && !createParents:
		return pathErr("add", parent, ErrNotExist)
	case !ok:
		made, err := f.mkdirAll(parent)
		if err != nil {
			return err
		}
		dir = made
	default:
		dir, ok = parentNode.(*Directory)
		if !ok {
			return pathErr("add", parent, ErrNotDirectory)
		}
	}

	if _, exists := dir.Child(p.Name()); exists {
		return pathErr("add", p, ErrExist)
	}
	if err := dir.Add(p.Name(), n); err != nil {
		return pathErr("add", p, err)
	}
	return nil
}

// Copy deep-copies the node at source to destination. Copying a directory
// requires recursive. The destination may not sit inside the source.
// Afterward the two trees share no mutable state.
func (f *FileSystem) Copy(source, destination vpath.Path, recursive bool) error {
	if source.IsAncestorOf(destination) {
		return pathErr("copy", destination, ErrNested)
	}
	node, ok := f.Get(source)
	if !ok {
		return pathErr("copy", source, ErrNotExist)
	}
	if _, isDir := node.(*Directory); isDir && !recursive {
		return pathErr("copy", source, ErrIsDirectory)
	}
	return f.Add(destination, node.Copy(), false)
}

// Move transfers ownership of the node at source to destination. No copy
// is made; the node is attached at the destination and detached from its
// original parent.
func (f *FileSystem) Move(source, destination vpath.Path) error {
	if source.IsAncestorOf(destination) {
		return pathErr("move", destination, ErrNested)
	}
	node, ok := f.Get(source)
	if !ok {
		return pathErr("move", source, ErrNotExist)
	}
	if err := f.Add(destination, node, false); err != nil {
		return err
	}

	if parentNode, ok := f.lookup(source.Parent().Segments()); ok {
		if dir, ok := parentNode.(*Directory); ok {
			dir.Remove(source.Name())
		}
	}
	return nil
}

// Remove deletes the node at the path along with everything it owns.
// Removing an absent node, or one whose parent is not a directory, is a
// silent no-op so cleanup stays idempotent. Root protection and
// must-be-empty policies belong to the command layer, not here.
func (f *FileSystem) Remove(p vpath.Path) {
	if !f.Has(p) {
		return
	}
	parentNode, ok := f.lookup(p.Parent().Segments())
	if !ok {
		return
	}
	dir, ok := parentNode.(*Directory)
	if !ok {
		return
	}
	dir.Remove(p.Name())
}
