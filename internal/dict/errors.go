package dict

import "path/filepath"

// NotFoundError reports a missing word list. Name is the base name of the
// resource so callers never print the full path.
type NotFoundError struct {
	Name string
	Err  error
}

func NewNotFoundError(path string, err error) *NotFoundError {
	return &NotFoundError{Name: filepath.Base(path), Err: err}
}

func (e *NotFoundError) Error() string {
	return e.Name + " could not be found"
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// LoadError wraps any other failure to read or parse a word list.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "load " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
