package learning

import "fmt"

// LoadError indicates a learning-set file could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load learning set %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FormatError indicates a learning-set file was read but its content is
// unusable. Err is set when a decoder reported the problem.
type FormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid learning set %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid learning set %s: %s", e.Path, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }
