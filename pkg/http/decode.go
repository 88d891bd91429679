package http

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const decodeReadSize = 4096

// Decoder reads HTTP messages from a stream, feeding bytes into the
// incremental wire decoders one buffered read at a time rather than
// requiring the full message upfront. A single Decoder is not safe for
// concurrent use; create one per goroutine or serialize access externally.
type Decoder struct {
	r      *bufio.Reader
	limits Limits
}

// NewDecoder returns a new decoder that reads from r using DefaultLimits.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r), limits: DefaultLimits()}
}

// NewDecoderWithLimits returns a new decoder that reads from r, bounding
// every syntactic element per limits.
func NewDecoderWithLimits(r io.Reader, limits Limits) *Decoder {
	return &Decoder{r: bufio.NewReader(r), limits: limits}
}

// Decode reads the next HTTP message and stores it in v.
// v must be a *Request or *Response.
func (dec *Decoder) Decode(v interface{}) error {
	prefix, err := dec.r.Peek(5)
	if err != nil {
		return fmt.Errorf("http: decode: %w", err)
	}
	isResponse := bytes.Equal(prefix, []byte("HTTP/"))

	switch target := v.(type) {
	case *Request:
		if isResponse {
			return fmt.Errorf("http: data appears to be a response but target is *Request")
		}
		return dec.decodeRequest(target)
	case *Response:
		if !isResponse {
			return fmt.Errorf("http: data appears to be a request but target is *Response")
		}
		return dec.decodeResponseHint(target, false)
	default:
		return fmt.Errorf("http: Decode unsupported type %T", v)
	}
}

// DecodeRequest reads the next HTTP request from the stream.
func (dec *Decoder) DecodeRequest() (*Request, error) {
	req := &Request{}
	if err := dec.decodeRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// DecodeResponse reads the next HTTP response from the stream.
// noBodyExpected should be true when the caller knows the corresponding
// request method was HEAD, since the wire format alone cannot reveal that.
func (dec *Decoder) DecodeResponse(noBodyExpected bool) (*Response, error) {
	resp := &Response{}
	if err := dec.decodeResponseHint(resp, noBodyExpected); err != nil {
		return nil, err
	}
	return resp, nil
}

func (dec *Decoder) decodeRequest(target *Request) error {
	rd := NewRequestDecoder(dec.limits)
	err := dec.pump(rd.Decode, func() bool {
		return rd.Phase() == PhaseFinished || rd.Phase() == PhaseError
	})
	if err != nil {
		return fmt.Errorf("http: decode request: %w", err)
	}
	if rd.Phase() == PhaseError {
		return fmt.Errorf("http: decode request: %w", rd.Err())
	}
	*target = *rd.Request()
	dec.unread(rd.Buffer())
	return nil
}

func (dec *Decoder) decodeResponseHint(target *Response, noBodyExpected bool) error {
	rd := NewResponseDecoder(dec.limits, noBodyExpected)
	err := dec.pump(rd.Decode, func() bool {
		return rd.Phase() == PhaseFinished || rd.Phase() == PhaseError
	})
	if err != nil {
		return fmt.Errorf("http: decode response: %w", err)
	}
	if rd.Phase() == PhaseError {
		return fmt.Errorf("http: decode response: %w", rd.Err())
	}
	*target = *rd.Response()
	dec.unread(rd.Buffer())
	return nil
}

// pump feeds the stream into decode one buffered read at a time until done
// reports true, surfacing a short read as io.ErrUnexpectedEOF.
func (dec *Decoder) pump(decode func([]byte) error, done func() bool) error {
	buf := make([]byte, decodeReadSize)
	for !done() {
		n, err := dec.r.Read(buf)
		if n > 0 {
			if decErr := decode(buf[:n]); decErr != nil {
				return decErr
			}
		}
		if done() {
			return nil
		}
		if err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}
	return nil
}

// unread pushes bytes the message decoder didn't consume — the pipelining
// handoff for a message that arrived in the same read as the next one's
// start — back in front of the buffered reader.
func (dec *Decoder) unread(leftover []byte) {
	if len(leftover) == 0 {
		return
	}
	dec.r = bufio.NewReader(io.MultiReader(bytes.NewReader(leftover), dec.r))
}
