package http

import (
	"bytes"
	"fmt"
	"io"
)

// Validate checks that input is a syntactically valid HTTP/1.0 or
// HTTP/1.1 message per RFC 9112: a well-formed start line, header block,
// and (when framed) a complete body. It does not evaluate body semantics
// beyond framing. Returns nil if valid, or a descriptive error identifying
// the problem.
func Validate(input []byte) error {
	if bytes.HasPrefix(input, []byte("HTTP/")) {
		rd := NewResponseDecoder(DefaultLimits(), false)
		if err := rd.Decode(input); err != nil {
			return err
		}
		if rd.Phase() == PhaseError {
			return rd.Err()
		}
		if rd.Phase() != PhaseFinished && rd.Phase() != PhaseBodyEOF {
			return fmt.Errorf("http: validate: incomplete message")
		}
		return nil
	}

	rd := NewRequestDecoder(DefaultLimits())
	if err := rd.Decode(input); err != nil {
		return err
	}
	if rd.Phase() == PhaseError {
		return rd.Err()
	}
	if rd.Phase() != PhaseFinished {
		return fmt.Errorf("http: validate: incomplete message")
	}
	return nil
}

// ValidateReader reads all data from r and validates it as an HTTP
// message. See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return Validate(data)
}
