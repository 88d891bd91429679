package http

import (
	"net/url"
	"strings"

	"github.com/quanxiaoxiao/http-parser/internal/wire"
)

func canonicalReasonPhrase(statusCode int) string {
	return wire.CanonicalReasonPhrase(statusCode)
}

// canonicalSegmentOverrides holds the well-known-acronym exceptions to
// default hyphen-segment title-casing (spec §4.7.2).
var canonicalSegmentOverrides = map[string]string{
	"etag": "ETag",
	"www":  "WWW",
	"te":   "TE",
	"dnt":  "DNT",
	"md5":  "MD5",
	"csrf": "CSRF",
}

// CanonicalHeaderName lowercases name and capitalizes after each hyphen,
// special-casing a small set of well-known acronyms.
func CanonicalHeaderName(name string) string {
	segments := strings.Split(name, "-")
	for i, seg := range segments {
		lower := strings.ToLower(seg)
		if override, ok := canonicalSegmentOverrides[lower]; ok {
			segments[i] = override
			continue
		}
		if lower == "" {
			segments[i] = lower
			continue
		}
		segments[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(segments, "-")
}

// EncodeHeadersOptions configures EncodeHeaders.
type EncodeHeadersOptions struct {
	// EncodeValue, when true, percent-encodes each header value before
	// emission. Default is to emit values raw.
	EncodeValue bool
}

// EncodeHeaders appends one "Canonical-Name: value\r\n" line per header
// value, preserving array-valued headers' original order (spec §4.7.2).
func EncodeHeaders(buf []byte, headers Headers, opts EncodeHeadersOptions) []byte {
	for _, h := range headers {
		value := h.Value
		if opts.EncodeValue {
			value = url.QueryEscape(value)
		}
		buf = append(buf, CanonicalHeaderName(h.Key)...)
		buf = append(buf, ':', ' ')
		buf = append(buf, value...)
		buf = appendCRLF(buf)
	}
	return buf
}
