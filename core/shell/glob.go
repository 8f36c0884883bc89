package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vshell/vsh/core/vfs"
	"github.com/vshell/vsh/core/vpath"
)

// Globber resolves marked tokens against the filesystem relative to a
// working directory. It is the second, state-consulting half of the
// expansion pipeline; the lexical half is Expand.
type Globber struct {
	FS  *vfs.FileSystem
	Cwd vpath.Path
}

// candidate pairs the match text as it will be rendered back to the user
// with the resolved path used for further descent. Rendering preserves
// the relative or absolute shape of the original token.
type candidate struct {
	rendered string
	path     vpath.Path
}

// Expand resolves one expanded token. Tokens without glob markers pass
// through unchanged as literals, whether or not they name anything on the
// filesystem. A marked token that matches nothing is an error. Matches
// come back sorted; a trailing slash in the token restricts the final
// segment to directories and is rendered back onto each match.
func (g *Globber) Expand(token string) ([]string, error) {
	if !ContainsGlob(token) {
		return []string{token}, nil
	}

	absolute := strings.HasPrefix(token, "/")
	dirOnly := strings.HasSuffix(token, "/")

	var segs []string
	for _, seg := range strings.Split(token, "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}

	start := candidate{path: g.Cwd}
	if absolute {
		start.path = vpath.Root()
	}

	cands := []candidate{start}
	for si, seg := range segs {
		last := si == len(segs)-1

		var next []candidate
		for _, c := range cands {
			if !ContainsGlob(seg) {
				p := c.path.Join(seg)
				lookup := p
				if !last || dirOnly {
					lookup = p.AsDir()
				}
				if g.FS.Has(lookup) {
					next = append(next, candidate{
						rendered: joinRendered(c.rendered, seg, absolute),
						path:     p,
					})
				}
				continue
			}

			dirNode, ok := g.FS.Get(c.path.AsDir())
			if !ok {
				continue
			}
			dir := dirNode.(*vfs.Directory)

			for _, name := range dir.Names() {
				if !segmentMatch([]rune(seg), []rune(name)) {
					continue
				}
				child, _ := dir.Child(name)
				_, childIsDir := child.(*vfs.Directory)
				if (!last || dirOnly) && !childIsDir {
					continue
				}
				next = append(next, candidate{
					rendered: joinRendered(c.rendered, name, absolute),
					path:     c.path.Join(name),
				})
			}
		}

		cands = next
		if len(cands) == 0 {
			break
		}
	}

	if len(cands) == 0 {
		return nil, fmt.Errorf("%s: %w", Unmark(token), ErrNoMatches)
	}

	out := make([]string, 0, len(cands))
	for _, c := range cands {
		rendered := c.rendered
		if dirOnly {
			rendered += "/"
		}
		out = append(out, rendered)
	}
	sort.Strings(out)
	return out, nil
}

func joinRendered(prefix, seg string, absolute bool) string {
	if prefix == "" {
		if absolute {
			return "/" + seg
		}
		return seg
	}
	return prefix + "/" + seg
}

// segmentMatch matches one marked pattern segment against one entry name.
// Wildcards never cross a "/" (segments are split before matching) and
// never match a leading dot unless the pattern itself starts with a
// literal dot.
func segmentMatch(pattern, name []rune) bool {
	if len(name) > 0 && name[0] == '.' && (len(pattern) == 0 || pattern[0] != '.') {
		return false
	}
	return matchHere(pattern, name)
}

func matchHere(pattern, name []rune) bool {
	if len(pattern) == 0 {
		return len(name) == 0
	}
	switch pattern[0] {
	case markStar:
		for skip := 0; skip <= len(name); skip++ {
			if matchHere(pattern[1:], name[skip:]) {
				return true
			}
		}
		return false
	case markQuestion:
		return len(name) > 0 && matchHere(pattern[1:], name[1:])
	default:
		return len(name) > 0 && name[0] == pattern[0] && matchHere(pattern[1:], name[1:])
	}
}
