package http

import "strconv"

// hopByHopHeaders lists header names stripped by Sanitize before
// re-emission by an intermediary (spec §4.7.1).
var hopByHopHeaders = map[string]bool{
	"connection":          true,
	"keep-alive":          true,
	"proxy-connection":    true,
	"proxy-authenticate":  true,
	"proxy-authorization": true,
	"te":                  true,
	"trailer":             true,
	"transfer-encoding":   true,
	"upgrade":             true,
}

// methodsDenyingImplicitBody are the request methods whose absent or
// zero-byte body leaves Content-Length unset (every other method's gets
// Content-Length: 0).
var methodsDenyingImplicitBody = map[string]bool{
	"GET":     true,
	"HEAD":    true,
	"OPTIONS": true,
	"TRACE":   true,
	"DELETE":  true,
}

// BodyStream is a source of body chunks for an async-streamed message
// body, read one chunk at a time. Next returns io.EOF once exhausted.
// Implementations that wrap a cancellable source must propagate
// cancellation of the consumer's pull loop back to that source.
type BodyStream interface {
	Next() ([]byte, error)
}

// ApplyFraming derives Content-Length or Transfer-Encoding from the shape
// of body and mutates headers in place (spec §4.7.1). body must be nil,
// []byte, or a BodyStream.
//
// method, isResponse and statusCode are only consulted when body is nil
// or zero-length, to decide whether Content-Length: 0 is emitted; method
// is ignored when isResponse is true.
func ApplyFraming(headers *Headers, body interface{}, method string, isResponse bool, statusCode int) error {
	switch b := body.(type) {
	case nil:
		applyNoBodyFraming(headers, method, isResponse, statusCode)
	case []byte:
		headers.Del("Transfer-Encoding")
		if len(b) == 0 {
			applyNoBodyFraming(headers, method, isResponse, statusCode)
			return nil
		}
		headers.Set("Content-Length", strconv.Itoa(len(b)))
	case BodyStream:
		headers.Del("Content-Length")
		headers.Del("Content-Range")
		headers.Set("Transfer-Encoding", "chunked")
	default:
		return &WireError{Kind: InvalidArgument, Message: "ApplyFraming: body must be nil, []byte, or BodyStream"}
	}
	return nil
}

func applyNoBodyFraming(headers *Headers, method string, isResponse bool, statusCode int) {
	headers.Del("Transfer-Encoding")
	if !bodySemanticallyAllowed(method, isResponse, statusCode) {
		headers.Del("Content-Length")
		return
	}
	headers.Set("Content-Length", "0")
}

func bodySemanticallyAllowed(method string, isResponse bool, statusCode int) bool {
	if isResponse {
		return !(statusCode >= 100 && statusCode <= 199) && statusCode != 204 && statusCode != 304
	}
	return !methodsDenyingImplicitBody[method]
}

// Sanitize removes hop-by-hop headers (spec §4.7.1) and any header named
// within a Connection header's value. Mandatory before an intermediary
// re-emits a message; optional for first-party encoding.
func Sanitize(headers *Headers) {
	extra := headers.Values("Connection")
	for _, v := range extra {
		for _, name := range splitCommaList(v) {
			headers.Del(name)
		}
	}
	for name := range hopByHopHeaders {
		headers.Del(name)
	}
}

func splitCommaList(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			part := trimSpaceASCII(s[start:i])
			if part != "" {
				out = append(out, part)
			}
			start = i + 1
		}
	}
	return out
}

func trimSpaceASCII(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}
