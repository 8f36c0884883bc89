package vfs

import (
	"errors"
	"io/fs"

	"github.com/vshell/vsh/core/vpath"
)

// Sentinel errors returned (wrapped in *fs.PathError) by filesystem
// operations. ErrExist and ErrNotExist alias the io/fs sentinels so
// callers can match with errors.Is against either.
var (
	ErrExist        = fs.ErrExist
	ErrNotExist     = fs.ErrNotExist
	ErrNotDirectory = errors.New("not a directory")
	ErrIsDirectory  = errors.New("is a directory")
	ErrIsRoot       = errors.New("path is the root")
	ErrNested       = errors.New("destination is inside source")
	ErrBadName      = errors.New("invalid node name")
)

func pathErr(op string, p vpath.Path, err error) error {
	return &fs.PathError{Op: op, Path: p.String(), Err: err}
}
