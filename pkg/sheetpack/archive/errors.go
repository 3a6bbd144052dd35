package archive

import "fmt"

// EntryError reports a failure while compressing one archive entry.
// Archive assembly is all-or-nothing: the first EntryError aborts the
// whole build, and the underlying compressor error is preserved for
// errors.Is / errors.As inspection.
type EntryError struct {
	Path string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("compressing entry %q: %v", e.Path, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
