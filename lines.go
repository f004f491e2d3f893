package eventsource

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// lineReader adapts a streaming body into a sequence of text lines. A line
// ends at '\n'; lines spanning multiple underlying reads are reassembled.
// One trailing '\r' is stripped, so "\r\n"-terminated streams parse the
// same as "\n"-terminated ones.
type lineReader struct {
	reader *bufio.Reader
	max    int
}

func newLineReader(r io.Reader, bufferSize, maxLineBytes int) *lineReader {
	return &lineReader{
		reader: bufio.NewReaderSize(r, bufferSize),
		max:    maxLineBytes,
	}
}

// next returns the next line with its terminator stripped. At end of input
// a non-empty unterminated tail is returned as the final line; the call
// after that returns io.EOF. Read failures from the underlying source are
// returned as-is so callers can tell them apart from normal termination.
func (lr *lineReader) next() (string, error) {
	var line strings.Builder
	for {
		frag, err := lr.reader.ReadSlice('\n')
		line.Write(frag)
		if lr.max > 0 && line.Len() > lr.max {
			return "", NewTransportError(fmt.Errorf("line exceeds %d bytes", lr.max))
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil {
			if err == io.EOF && line.Len() > 0 {
				return trimLineEnding(line.String()), nil
			}
			return "", err
		}
		return trimLineEnding(line.String()), nil
	}
}

// trimLineEnding strips the trailing newline and at most one '\r'.
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
