package graph

import "errors"

// ErrFileNotFound indicates that ReadFile's path could not be opened.
// The caller receives an empty Graph and this error; it is not fatal
// in the sense the original CLI treats it (logged and the program
// proceeds with whatever graph it already has), but callers that need
// the file are expected to check it.
var ErrFileNotFound = errors.New("graph: map file not found")
