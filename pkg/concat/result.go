// File: pkg/concat/result.go
package concat

import "fmt"

// FileResult records what happened to one candidate file.
type FileResult struct {
	Path string // Path relative to the root directory.
	Err  error  // Read failure, nil when the contents were written.
}

// OK reports whether the file contents made it into the output.
func (r FileResult) OK() bool { return r.Err == nil }

// Result is the outcome of a concatenation run.
type Result struct {
	Output string       // Output path that was written.
	Files  []FileResult // Every candidate file in traversal order.
	Err    error        // Run-level failure, nil on success.
}

// OK reports whether the run completed.
func (r Result) OK() bool { return r.Err == nil }

// Written counts files whose contents were written.
func (r Result) Written() int {
	n := 0
	for _, f := range r.Files {
		if f.OK() {
			n++
		}
	}
	return n
}

// Failed counts files recorded as read errors.
func (r Result) Failed() int {
	return len(r.Files) - r.Written()
}

// Message is the human-readable status line for the run.
func (r Result) Message() string {
	if r.OK() {
		return fmt.Sprintf("Successfully concatenated code files to %s", r.Output)
	}
	return fmt.Sprintf("Error during concatenation: %v", r.Err)
}
