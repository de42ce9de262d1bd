package tokens

import "fmt"

// FormatError is returned when input matches none of the recognized source
// formats.
type FormatError struct{}

func (e *FormatError) Error() string {
	return "unrecognized format: expected JSON, CSS custom properties or SCSS variables"
}

// ParseError is returned when input in a recognized format is malformed.
type ParseError struct {
	Format SourceFormat
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownFormatError is returned for an export format that is not
// implemented.
type UnknownFormatError struct {
	Name       string
	Suggestion string
}

func (e *UnknownFormatError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown export format %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown export format %q", e.Name)
}
