package http

import (
	"io"
	"strconv"
)

// Encoder writes HTTP messages to an output stream in wire format.
// A single Encoder is not safe for concurrent use; create one per goroutine
// or serialize access externally.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the wire-format encoding of v to the stream.
// v must be a *Request or *Response with a nil or []byte body; a message
// with a streamed body must use EncodeRequestStream/EncodeResponseStream.
func (enc *Encoder) Encode(v interface{}) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = enc.w.Write(data)
	return err
}

// EncodeRequestStream writes a request line and headers, framed for a
// chunked body, then drains body one chunk at a time (spec §4.7.3). The
// full header block reaches the stream before the first chunk is pulled,
// so the body source is never forced to materialize before headers are
// on the wire.
func (enc *Encoder) EncodeRequestStream(method, path, version string, headers Headers, body BodyStream) error {
	h := headers.Clone()
	if err := ApplyFraming(&h, body, method, false, 0); err != nil {
		return err
	}
	if _, err := enc.w.Write(appendRequestLine(nil, method, path, version)); err != nil {
		return err
	}
	return enc.writeHeadersAndStream(h, body)
}

// EncodeResponseStream writes a status line and headers, framed for a
// chunked body, then drains body one chunk at a time.
func (enc *Encoder) EncodeResponseStream(version string, statusCode int, reason string, headers Headers, body BodyStream) error {
	h := headers.Clone()
	if err := ApplyFraming(&h, body, "", true, statusCode); err != nil {
		return err
	}
	if _, err := enc.w.Write(appendStatusLine(nil, version, statusCode, reason)); err != nil {
		return err
	}
	return enc.writeHeadersAndStream(h, body)
}

func (enc *Encoder) writeHeadersAndStream(headers Headers, body BodyStream) error {
	buf := EncodeHeaders(nil, headers, EncodeHeadersOptions{})
	buf = appendCRLF(buf)
	if _, err := enc.w.Write(buf); err != nil {
		return err
	}
	return writeChunkedStream(enc.w, body)
}

// writeChunkedStream pulls chunks from body until io.EOF, writing each as
// a chunked-encoding chunk, then the terminating zero-size chunk. Empty
// source buffers are skipped before chunking since a zero-length chunk
// would otherwise terminate the stream prematurely on the wire.
func writeChunkedStream(w io.Writer, body BodyStream) error {
	for {
		chunk, err := body.Next()
		if len(chunk) > 0 {
			if werr := writeOneChunk(w, chunk); werr != nil {
				return werr
			}
		}
		if err != nil {
			if err == io.EOF {
				_, werr := io.WriteString(w, "0\r\n\r\n")
				return werr
			}
			return err
		}
	}
}

func writeOneChunk(w io.Writer, chunk []byte) error {
	size := strconv.AppendInt(nil, int64(len(chunk)), 16)
	if _, err := w.Write(size); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\r\n"); err != nil {
		return err
	}
	if _, err := w.Write(chunk); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\r\n")
	return err
}
