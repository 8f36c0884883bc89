// Package vpath implements normalized absolute paths for the virtual
// filesystem. Paths are values: construction normalizes once and every
// derived path is already normalized.
package vpath

import "strings"

// Path is a normalized absolute path. The zero value is the root.
//
// Normalization drops empty and "." segments and resolves ".." by popping
// the previous segment; ".." at the root is absorbed. Malformed input is
// resolved, never rejected. A trailing slash flags the path as denoting a
// directory, which matters when resolving it against the filesystem.
type Path struct {
	segs []string
	dir  bool
}

// Root returns the root path "/".
func Root() Path {
	return Path{dir: true}
}

// New builds a path by concatenating the given fragments and normalizing
// the result. The path is interpreted as absolute whether or not the first
// fragment begins with "/".
func New(parts ...string) Path {
	raw := strings.Join(parts, "/")

	var segs []string
	for _, seg := range strings.Split(raw, "/") {
		switch seg {
		case "", ".":
			// skip
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, seg)
		}
	}

	return Path{
		segs: segs,
		dir:  len(segs) == 0 || strings.HasSuffix(raw, "/"),
	}
}

// Interpret resolves fragments against a working directory. If the first
// fragment begins with "/" the result is absolute, otherwise it is taken
// relative to cwd.
func Interpret(cwd Path, parts ...string) Path {
	if len(parts) > 0 && strings.HasPrefix(parts[0], "/") {
		return New(parts...)
	}
	return New(append([]string{cwd.String()}, parts...)...)
}

// String renders the path. Directory-flagged paths other than the root keep
// a trailing slash so the flag survives a round trip through New.
func (p Path) String() string {
	if len(p.segs) == 0 {
		return "/"
	}
	out := "/" + strings.Join(p.segs, "/")
	if p.dir {
		out += "/"
	}
	return out
}

// Display renders the path for human-facing output: like String but
// without the trailing slash directory marker, which only the root keeps.
func (p Path) Display() string {
	if len(p.segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.segs, "/")
}

// Name returns the last segment, or the empty string for the root.
func (p Path) Name() string {
	if len(p.segs) == 0 {
		return ""
	}
	return p.segs[len(p.segs)-1]
}

// IsRoot reports whether the path is "/".
func (p Path) IsRoot() bool {
	return len(p.segs) == 0
}

// IsDir reports whether the path denotes a directory.
func (p Path) IsDir() bool {
	return p.dir
}

// AsDir returns the same path with the directory flag set.
func (p Path) AsDir() Path {
	return Path{segs: p.segs, dir: true}
}

// Segments returns the path's segments from the root down. The returned
// slice must not be modified.
func (p Path) Segments() []string {
	return p.segs
}

// Parent returns the path one segment up. Parents always denote
// directories. The parent of the root is the root.
func (p Path) Parent() Path {
	if len(p.segs) == 0 {
		return Root()
	}
	return Path{segs: p.segs[:len(p.segs)-1], dir: true}
}

// Ancestors returns the chain from the immediate parent up to the root,
// exclusive of the path itself. The root has no ancestors.
func (p Path) Ancestors() []Path {
	var out []Path
	for cur := p; !cur.IsRoot(); {
		cur = cur.Parent()
		out = append(out, cur)
	}
	return out
}

// Join appends fragments to the path, normalizing the result.
func (p Path) Join(parts ...string) Path {
	return New(append([]string{p.String()}, parts...)...)
}

// Equal reports whether two paths name the same node. The directory flag
// is ignored; "/a" and "/a/" address the same tree position.
func (p Path) Equal(other Path) bool {
	if len(p.segs) != len(other.segs) {
		return false
	}
	for i := range p.segs {
		if p.segs[i] != other.segs[i] {
			return false
		}
	}
	return true
}

// IsAncestorOf reports whether p is a strict ancestor of other.
func (p Path) IsAncestorOf(other Path) bool {
	if len(p.segs) >= len(other.segs) {
		return false
	}
	for i := range p.segs {
		if p.segs[i] != other.segs[i] {
			return false
		}
	}
	return true
}
