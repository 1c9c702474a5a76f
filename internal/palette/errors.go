package palette

import "fmt"

// MissingFieldError is returned when a required color path is absent from
// a table, or when it names a group where a color is expected.
type MissingFieldError struct {
	Path  string
	Group bool
}

func (e *MissingFieldError) Error() string {
	if e.Group {
		return fmt.Sprintf("missing field %q: path names a group, not a color", e.Path)
	}
	return fmt.Sprintf("missing field %q", e.Path)
}
