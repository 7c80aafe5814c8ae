package collector

import "fmt"

// MalformedRecordError reports a matched frame-descriptor block that is
// missing a required field. It aborts the file being processed rather than
// being skipped: skipping would mean silently losing keyframes, and the
// scanner must not advance past a block it could not parse.
type MalformedRecordError struct {
	Missing string // name of the absent field
	Block   string // offending block body, trimmed
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed frame record: missing %s field", e.Missing)
}
