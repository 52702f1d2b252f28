// Package parseradapter defines the collaborator seam between a class-file
// reader and the matcher: whatever turns a JAR on disk into a populated
// *model.Group is explicitly out of scope, so the
// driver only depends on this interface, not a concrete implementation.
package parseradapter

import "github.com/vantines/obfmatch/internal/model"

// Parser builds a *model.Group from a JAR path, with hierarchy edges,
// cross-reference sets, constant pools, real/synthetic classification, and
// single-writer field initializers already populated.
type Parser interface {
	ParseGroup(path string) (*model.Group, error)
}

// Unimplemented is a Parser stand-in that always fails, letting the CLI
// driver and its tests compile and wire end to end against the matcher
// without a real class-file reader.
type Unimplemented struct{}

func (Unimplemented) ParseGroup(path string) (*model.Group, error) {
	return nil, &NotImplementedError{Path: path}
}

// NotImplementedError reports that no real Parser is wired in.
type NotImplementedError struct {
	Path string
}

func (e *NotImplementedError) Error() string {
	return "parseradapter: no JAR parser wired in (path " + e.Path + ")"
}
