package vfs

import (
	"github.com/vshell/vsh/core/vpath"
)

// OpenMode selects how a file is opened.
type OpenMode int

const (
	// ModeRead opens an existing file for reading from the start.
	ModeRead OpenMode = iota
	// ModeWrite creates the file if needed and truncates it.
	ModeWrite
	// ModeAppend creates the file if needed and positions at the end.
	ModeAppend
)

// String renders the mode for error messages.
func (m OpenMode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeAppend:
		return "append"
	default:
		return "unknown"
	}
}

// Open returns a stream over the file at the path. Reading requires the
// file to exist; writing and appending create it, though a missing parent
// still fails. Directories never open.
func (f *FileSystem) Open(p vpath.Path, mode OpenMode) (*FileStream, error) {
	node, ok := f.Get(p)
	if ok {
		if _, isDir := node.(*Directory); isDir {
			return nil, pathErr(mode.String(), p, ErrIsDirectory)
		}
	}

	switch mode {
	case ModeRead:
		if !ok {
			return nil, pathErr("read", p, ErrNotExist)
		}
		return newStream(node, 0), nil

	case ModeWrite, ModeAppend:
		if !ok {
			file := NewFile("")
			if err := f.Add(p, file, false); err != nil {
				return nil, err
			}
			node = file
		}
		if file, isFile := node.(*File); isFile {
			if mode == ModeWrite {
				file.SetContents("")
			}
			pos := 0
			if mode == ModeAppend {
				pos = len([]rune(file.Contents()))
			}
			return newStream(file, pos), nil
		}
		// NullFile: nothing to truncate, nothing to seek past.
		return newStream(node, 0), nil

	default:
		return nil, pathErr("open", p, ErrNotExist)
	}
}

// FileStream is a cursor into a file's text buffer. The position is
// measured in characters and always satisfies 0 <= pos <= content length.
type FileStream struct {
	file *File // nil for the null device
	pos  int
}

func newStream(node Node, pos int) *FileStream {
	switch n := node.(type) {
	case *File:
		return &FileStream{file: n, pos: pos}
	default:
		return &FileStream{}
	}
}

// sync re-reads the file's buffer and clamps the position into it. The
// file can shrink behind the stream's back, e.g. when another stream
// truncates it, so the position invariant is restored on every access.
func (s *FileStream) sync() []rune {
	runes := []rune(s.file.Contents())
	if s.pos > len(runes) {
		s.pos = len(runes)
	}
	return runes
}

// Pos returns the current character offset.
func (s *FileStream) Pos() int {
	if s.file != nil {
		s.sync()
	}
	return s.pos
}

// ReadN returns up to n characters from the current position and advances
// by the number returned. A negative n reads the remainder.
func (s *FileStream) ReadN(n int) string {
	if s.file == nil {
		return ""
	}
	runes := s.sync()
	rest := len(runes) - s.pos
	if n < 0 || n > rest {
		n = rest
	}
	out := string(runes[s.pos : s.pos+n])
	s.pos += n
	return out
}

// ReadAll returns everything from the current position to the end.
func (s *FileStream) ReadAll() string {
	return s.ReadN(-1)
}

// WriteString writes text at the current position. Existing content is
// overwritten in place for the length of the text; any trailing content
// beyond it is kept. The position advances past the written text.
func (s *FileStream) WriteString(text string) {
	if s.file == nil {
		return
	}
	runes := s.sync()
	in := []rune(text)

	out := make([]rune, 0, len(runes)+len(in))
	out = append(out, runes[:s.pos]...)
	out = append(out, in...)
	if tail := s.pos + len(in); tail < len(runes) {
		out = append(out, runes[tail:]...)
	}

	s.file.SetContents(string(out))
	s.pos += len(in)
}

// Write implements io.Writer over WriteString so streams can back
// redirected command output.
func (s *FileStream) Write(p []byte) (int, error) {
	s.WriteString(string(p))
	return len(p), nil
}
