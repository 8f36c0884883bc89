// Package vfs implements the in-memory virtual filesystem: a single-owner
// tree of directories and text files addressed by normalized absolute
// paths.
package vfs

import (
	"sort"
	"strings"

	"github.com/vshell/vsh/core/vpath"
)

// Node is an addressable entity in the filesystem tree. The set of
// implementations is closed: Directory, File and NullFile. Code that needs
// per-variant behavior should use an exhaustive type switch.
type Node interface {
	// Copy returns a deep copy sharing no mutable state with the original.
	Copy() Node

	node()
}

// Directory owns a mapping from child name to node. Directories do not
// hold parent pointers; ancestry is always derived from paths, which keeps
// the tree singly-owned and cycle free.
type Directory struct {
	children map[string]Node
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{children: make(map[string]Node)}
}

// NewDirectoryOf returns a directory with the given initial children,
// failing on the first invalid child name.
func NewDirectoryOf(children map[string]Node) (*Directory, error) {
	d := NewDirectory()
	for name, child := range children {
		if err := d.Add(name, child); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ValidateName checks that name is usable as a directory entry: non-empty,
// not "." or "..", and free of path separators.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return ErrBadName
	case strings.Contains(name, "/"):
		return ErrBadName
	}
	return nil
}

// Add inserts a child under the given name. The name must be valid and
// not already taken.
func (d *Directory) Add(name string, child Node) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, exists := d.children[name]; exists {
		return ErrExist
	}
	if d.children == nil {
		d.children = make(map[string]Node)
	}
	d.children[name] = child
	return nil
}

// Remove deletes the named child and, transitively, everything it owns.
// Removing a missing name is a no-op.
func (d *Directory) Remove(name string) {
	delete(d.children, name)
}

// Child returns the named child node.
func (d *Directory) Child(name string) (Node, bool) {
	child, ok := d.children[name]
	return child, ok
}

// Names returns the child names in sorted order.
func (d *Directory) Names() []string {
	out := make([]string, 0, len(d.children))
	for name := range d.children {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of children.
func (d *Directory) Len() int {
	return len(d.children)
}

// Copy implements Node.Copy by deep-copying the whole subtree.
func (d *Directory) Copy() Node {
	out := NewDirectory()
	for name, child := range d.children {
		out.children[name] = child.Copy()
	}
	return out
}

func (*Directory) node() {}

// File owns a single mutable text buffer. All content is text; offsets are
// measured in characters, not bytes.
type File struct {
	contents string
}

// NewFile returns a file with the given initial contents.
func NewFile(contents string) *File {
	return &File{contents: contents}
}

// Contents returns the file's text.
func (f *File) Contents() string {
	return f.contents
}

// SetContents replaces the file's text.
func (f *File) SetContents(contents string) {
	f.contents = contents
}

// Copy implements Node.Copy.
func (f *File) Copy() Node {
	return &File{contents: f.contents}
}

func (*File) node() {}

// NullFile is the discard device: reads yield nothing and writes vanish.
type NullFile struct{}

// Copy implements Node.Copy.
func (*NullFile) Copy() Node {
	return &NullFile{}
}

func (*NullFile) node() {}

// DisplayName renders a node's entry name for presentation; directories
// get a trailing slash.
func DisplayName(name string, n Node) string {
	if _, ok := n.(*Directory); ok {
		return name + "/"
	}
	return name
}

// Visitor carries the callbacks for Walk. Any of the fields may be nil.
// Pre runs before a node's children, Visit at the node itself, Post after
// the children.
type Visitor struct {
	Pre   func(p vpath.Path, n Node)
	Visit func(p vpath.Path, n Node)
	Post  func(p vpath.Path, n Node)
}

// Walk traverses the subtree rooted at n, which lives at path at, in
// deterministic sorted-name order. The traversal is complete: it is
// sufficient to serialize the tree.
func Walk(n Node, at vpath.Path, v Visitor) {
	if v.Pre != nil {
		v.Pre(at, n)
	}
	if v.Visit != nil {
		v.Visit(at, n)
	}
	if dir, ok := n.(*Directory); ok {
		for _, name := range dir.Names() {
			child, _ := dir.Child(name)
			childPath := at.Join(name)
			if _, ok := child.(*Directory); ok {
				childPath = childPath.AsDir()
			}
			Walk(child, childPath, v)
		}
	}
	if v.Post != nil {
		v.Post(at, n)
	}
}
