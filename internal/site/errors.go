package site

import "fmt"

// ParseError is returned when a content definition file fails to parse or
// fails validation.
type ParseError struct {
	File   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.File, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFileError is returned when a file the bundle references does not
// exist, e.g. a sidebar entry pointing at a page file that was never
// authored.
type MissingFileError struct {
	File string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing content file %s: %v", e.File, e.Err)
}

func (e *MissingFileError) Unwrap() error { return e.Err }
