// File: pkg/collect/text.go
package collect

import (
	"bytes"
	"unicode/utf8"
)

// sniffLen bounds how much of a file is inspected for binary content.
const sniffLen = 512

// isTextContent reports whether data can be treated as text. Content with
// null bytes, a high ratio of non-printable bytes in its first sniffLen
// bytes, or invalid UTF-8 is rejected.
func isTextContent(data []byte) bool {
	if len(data) == 0 {
		return true
	}

	sample := data
	if len(sample) > sniffLen {
		sample = sample[:sniffLen]
	}

	if bytes.IndexByte(sample, 0) >= 0 {
		return false
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	if float64(nonPrintable)/float64(len(sample)) > 0.3 {
		return false
	}

	return utf8.Valid(data)
}

// isPrintable checks if a byte represents a printable ASCII character.
// Bytes above 127 pass here and are left to the UTF-8 validity check.
func isPrintable(b byte) bool {
	return (b >= 32 && b != 127) || b == '\n' || b == '\r' || b == '\t'
}
