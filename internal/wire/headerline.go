package wire

import (
	"bytes"
	"strings"
)

// HeaderLine is a parsed single header line.
type HeaderLine struct {
	Name  string
	Value string
}

// ParseHeaderLine parses one header line's bytes (without CRLF) into a
// (name, value) pair. The name is the longest prefix before the first ':'.
func ParseHeaderLine(line []byte, maxNameBytes, maxValueBytes int) (HeaderLine, error) {
	colon := bytes.IndexByte(line, ':')
	if colon < 0 {
		return HeaderLine{}, newErr(InvalidHeaderLine, "missing ':' separator", line)
	}

	name := strings.TrimSpace(string(line[:colon]))
	if name == "" {
		return HeaderLine{}, newErr(EmptyHeaderName, "header name is empty after trimming", line)
	}
	if len(name) > maxNameBytes {
		return HeaderLine{}, newErr(HeaderTooLarge, "header name exceeds configured maximum", []byte(name))
	}

	value := strings.TrimSpace(string(line[colon+1:]))
	if len(value) > maxValueBytes {
		return HeaderLine{}, newErr(HeaderTooLarge, "header value exceeds configured maximum", []byte(value))
	}

	return HeaderLine{Name: internHeaderName(name), Value: value}, nil
}

// IsObsFoldContinuation reports whether line begins with SP or HTAB, the
// obsolete line-folding continuation marker (RFC 7230 §3.2.4).
func IsObsFoldContinuation(line []byte) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}
