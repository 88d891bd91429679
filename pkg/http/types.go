// Package http provides an incremental, streaming encoder and decoder for
// HTTP/1.0 and HTTP/1.1 messages on the wire, per RFC 7230/7231/9112.
//
// Unlike a typical parser that requires a complete message buffered in
// memory, the decoders in this package are pausable state machines: each
// Decode call accepts whatever bytes the caller currently has — from one
// byte to an entire message — and resumes exactly where the previous call
// left off. This makes the package a natural fit for reading a TCP
// connection, where message boundaries rarely line up with read() calls.
//
// # Thread Safety
//
// A single Request/Response/Encoder/Decoder value must not be used
// concurrently by two goroutines. Independent values share no mutable
// state and may be advanced on separate goroutines freely.
//
// # Layers
//
//   - Decoder / Encoder — the streaming, io.Reader/io.Writer convenience
//     wrappers most callers want.
//   - Marshal / Unmarshal — one-shot helpers for a complete in-memory
//     message.
//   - The validate subpackage's functions — syntax checks for individual
//     structured header values (Content-Type, Cache-Control, Host, …).
package http

import (
	"strconv"
	"strings"

	"github.com/quanxiaoxiao/http-parser/internal/wire"
)

// Request represents an HTTP/1.0 or HTTP/1.1 request message.
type Request struct {
	Method  string  // "GET", "POST", etc.
	Path    string  // request-target "/api/users?q=foo"
	Version string  // "1.0" or "1.1"
	Headers Headers // ordered, repeatable headers
	Body    []byte  // raw body (nil if none)
}

// Response represents an HTTP/1.0 or HTTP/1.1 response message.
type Response struct {
	Version    string  // "1.0" or "1.1"
	StatusCode int     // 200, 404, etc.
	Reason     string  // "OK", "Not Found"
	Headers    Headers // ordered, repeatable headers
	Body       []byte  // raw body (nil if none)
}

// Header represents a single HTTP header key-value pair, preserving the
// original casing it arrived with.
type Header struct {
	Key   string
	Value string
}

// Headers is the ordered, repeatable "raw headers" view (spec §3): a flat
// sequence preserving original casing and insertion order. HTTP headers
// are case-insensitive by spec, so lookups below fold case.
type Headers []Header

// Get returns the first header value for the given key (case-insensitive).
// Returns empty string if not found.
func (h Headers) Get(key string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Values returns all header values for the given key (case-insensitive).
func (h Headers) Values(key string) []string {
	var vals []string
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			vals = append(vals, hdr.Value)
		}
	}
	return vals
}

// Set replaces the first header with the given key (case-insensitive) or appends if not found.
func (h *Headers) Set(key, value string) {
	for i, hdr := range *h {
		if strings.EqualFold(hdr.Key, key) {
			(*h)[i].Value = value
			// Remove any subsequent headers with same key
			j := i + 1
			for j < len(*h) {
				if strings.EqualFold((*h)[j].Key, key) {
					*h = append((*h)[:j], (*h)[j+1:]...)
				} else {
					j++
				}
			}
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// Add appends a header without replacing existing ones.
func (h *Headers) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Del removes all headers with the given key (case-insensitive).
func (h *Headers) Del(key string) {
	j := 0
	for _, hdr := range *h {
		if !strings.EqualFold(hdr.Key, key) {
			(*h)[j] = hdr
			j++
		}
	}
	*h = (*h)[:j]
}

// Clone returns a deep copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// Normalized returns the spec §3 "normalized headers" view: a
// lowercase-keyed multimap of trimmed, non-empty values, built fresh from
// the raw view on every call.
func (h Headers) Normalized() wire.NormalizedHeaders {
	b := wire.NewHeaderBuilder()
	for _, hdr := range h {
		b.Add(hdr.Key, hdr.Value)
	}
	return b.Normalized()
}

// ContentLength returns the Content-Length header value, or -1 if absent or invalid.
func (h Headers) ContentLength() int64 {
	v := h.Get("Content-Length")
	if v == "" {
		return -1
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// IsChunked returns true if Transfer-Encoding contains "chunked".
func (h Headers) IsChunked() bool {
	v := h.Get("Transfer-Encoding")
	return strings.Contains(strings.ToLower(v), "chunked")
}

// Message is the interface shared by Request and Response.
type Message interface {
	GetVersion() string
	GetHeaders() Headers
	GetBody() []byte
}

// GetVersion returns the HTTP version string.
func (r *Request) GetVersion() string { return r.Version }

// GetHeaders returns the headers.
func (r *Request) GetHeaders() Headers { return r.Headers }

// GetBody returns the body bytes.
func (r *Request) GetBody() []byte { return r.Body }

// GetVersion returns the HTTP version string.
func (r *Response) GetVersion() string { return r.Version }

// GetHeaders returns the headers.
func (r *Response) GetHeaders() Headers { return r.Headers }

// GetBody returns the body bytes.
func (r *Response) GetBody() []byte { return r.Body }

// Marshaler is the interface implemented by types that can marshal themselves
// into valid HTTP wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that can unmarshal
// an HTTP wire-format description of themselves.
type Unmarshaler interface {
	UnmarshalHTTP([]byte) error
}

func rawHeadersToHeaders(raw []wire.RawHeaderPair) Headers {
	if len(raw) == 0 {
		return nil
	}
	out := make(Headers, len(raw))
	for i, p := range raw {
		out[i] = Header{Key: p.Name, Value: p.Value}
	}
	return out
}
