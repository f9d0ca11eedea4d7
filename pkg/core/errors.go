package core

import (
	"errors"
	"fmt"
)

// Fatal errors.
var (
	ErrRootUnresolvable = errors.New("scan root cannot be resolved")
)

// Per-file errors. A scan absorbs these and drops the offending entry.
var (
	ErrTitleMissing        = errors.New("title marker not found")
	ErrFileUnreadable      = errors.New("file is unreadable")
	ErrNotText             = errors.New("content is not valid UTF-8 text")
	ErrPathNotText         = errors.New("path is not valid UTF-8")
	ErrTagPrefixMismatch   = errors.New("directory is not under the scan root")
	ErrSymlinkUnresolvable = errors.New("symlink cannot be resolved")
)

// NoteError records which path failed and why.
type NoteError struct {
	Path string
	Err  error
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *NoteError) Unwrap() error {
	return e.Err
}
