// File: pkg/concat/writer.go
package concat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

var equalsLine = strings.Repeat("=", SeparatorWidth)

// outputWriter frames file contents into the output stream. The first write
// error is kept and every later write becomes a no-op.
type outputWriter struct {
	w   *bufio.Writer
	err error
}

func newOutputWriter(w io.Writer) *outputWriter {
	return &outputWriter{w: bufio.NewWriter(w)}
}

func (o *outputWriter) write(parts ...string) {
	for _, s := range parts {
		if o.err != nil {
			return
		}
		_, o.err = o.w.WriteString(s)
	}
}

// writeTitle writes the timestamped title line and its separator.
func (o *outputWriter) writeTitle(at time.Time) {
	o.write(TitleLabel, at.Format(TimeLayout), "\n", equalsLine, "\n\n")
}

// writeFile writes one file block. The dash line has one '-' per character
// of the header.
func (o *outputWriter) writeFile(relPath, content string) {
	header := "File: " + relPath
	o.write(
		header, "\n",
		strings.Repeat("-", utf8.RuneCountInString(header)), "\n\n",
		content,
		"\n\n", equalsLine, "\n\n",
	)
}

// writeReadError records a file that could not be read.
func (o *outputWriter) writeReadError(relPath string, err error) {
	o.write(fmt.Sprintf("Error reading file %s: %v\n\n", relPath, err))
}

// flush pushes buffered output and returns the first error seen.
func (o *outputWriter) flush() error {
	if o.err != nil {
		return o.err
	}
	return o.w.Flush()
}
