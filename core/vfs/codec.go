package vfs

import (
	"fmt"

	"github.com/vshell/vsh/core/vpath"
)

// Node kind discriminators. They exist only at the serialized-byte
// boundary; inside the package every dispatch is an exhaustive type
// switch over the closed Node set.
const (
	KindDirectory = "Directory"
	KindFile      = "File"
	KindNullFile  = "NullFile"
)

// TreeNode is the serializable form of a node subtree. The json tags make
// it usable with both encoding/json and sigs.k8s.io/yaml, which is how
// configuration files embed filesystem seeds.
type TreeNode struct {
	Kind     string               `json:"kind"`
	Contents string               `json:"contents,omitempty"`
	Children map[string]*TreeNode `json:"children,omitempty"`
}

// Encode converts a node subtree into its serializable form.
func Encode(n Node) *TreeNode {
	switch n := n.(type) {
	case *Directory:
		out := &TreeNode{Kind: KindDirectory}
		if n.Len() > 0 {
			out.Children = make(map[string]*TreeNode, n.Len())
			for _, name := range n.Names() {
				child, _ := n.Child(name)
				out.Children[name] = Encode(child)
			}
		}
		return out
	case *File:
		return &TreeNode{Kind: KindFile, Contents: n.Contents()}
	case *NullFile:
		return &TreeNode{Kind: KindNullFile}
	default:
		// The Node set is closed; this is unreachable.
		panic(fmt.Sprintf("vfs: unknown node type %T", n))
	}
}

// Decode reconstructs a node subtree from its serializable form.
func (t *TreeNode) Decode() (Node, error) {
	switch t.Kind {
	case KindDirectory:
		dir := NewDirectory()
		for name, child := range t.Children {
			node, err := child.Decode()
			if err != nil {
				return nil, err
			}
			if err := dir.Add(name, node); err != nil {
				return nil, fmt.Errorf("decoding child %q: %w", name, err)
			}
		}
		return dir, nil
	case KindFile:
		return NewFile(t.Contents), nil
	case KindNullFile:
		return &NullFile{}, nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", t.Kind)
	}
}

// Snapshot serializes the whole filesystem by walking the tree. The
// traversal order is deterministic, so equal trees snapshot identically.
func (f *FileSystem) Snapshot() *TreeNode {
	var stack []*TreeNode

	Walk(f.root, vpath.Root(), Visitor{
		Pre: func(p vpath.Path, n Node) {
			var encoded *TreeNode
			switch n := n.(type) {
			case *Directory:
				encoded = &TreeNode{Kind: KindDirectory}
			case *File:
				encoded = &TreeNode{Kind: KindFile, Contents: n.Contents()}
			case *NullFile:
				encoded = &TreeNode{Kind: KindNullFile}
			}

			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				if parent.Children == nil {
					parent.Children = make(map[string]*TreeNode)
				}
				parent.Children[p.Name()] = encoded
			}
			stack = append(stack, encoded)
		},
		Post: func(p vpath.Path, n Node) {
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		},
	})

	return stack[0]
}

// Restore builds a filesystem from a snapshot, whose root must be a
// directory.
func Restore(t *TreeNode) (*FileSystem, error) {
	node, err := t.Decode()
	if err != nil {
		return nil, err
	}
	root, ok := node.(*Directory)
	if !ok {
		return nil, fmt.Errorf("snapshot root is %q, want %q", t.Kind, KindDirectory)
	}
	return NewWithRoot(root), nil
}
