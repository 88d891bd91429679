package http

import "github.com/quanxiaoxiao/http-parser/internal/wire"

// Limits bounds every syntactic element a decoder will accept. All fields
// are positive integers; see DefaultLimits for documented defaults.
type Limits = wire.Limits

// LimitOption mutates a Limits value under construction.
type LimitOption func(*Limits)

// NewLimits returns DefaultLimits with opts applied in order. The result
// is an in-process, non-persisted configuration value.
func NewLimits(opts ...LimitOption) Limits {
	l := wire.DefaultLimits()
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// DefaultLimits returns the spec-documented defaults: 8 KiB line, 8 KiB
// URI, 512 B reason phrase, 256 B header name, 8 KiB header value, 100
// headers, 32 KiB header block, 8 hex digits for chunk size.
func DefaultLimits() Limits {
	return wire.DefaultLimits()
}

// WithMaxLineBytes bounds any single CRLF-terminated line.
func WithMaxLineBytes(n int) LimitOption {
	return func(l *Limits) { l.MaxLineBytes = n }
}

// WithMaxURIBytes bounds the request-target.
func WithMaxURIBytes(n int) LimitOption {
	return func(l *Limits) { l.MaxURIBytes = n }
}

// WithMaxReasonPhraseBytes bounds a response's reason phrase.
func WithMaxReasonPhraseBytes(n int) LimitOption {
	return func(l *Limits) { l.MaxReasonPhraseBytes = n }
}

// WithMaxHeaderNameBytes bounds one header field-name.
func WithMaxHeaderNameBytes(n int) LimitOption {
	return func(l *Limits) { l.MaxHeaderNameBytes = n }
}

// WithMaxHeaderValueBytes bounds one header field-value.
func WithMaxHeaderValueBytes(n int) LimitOption {
	return func(l *Limits) { l.MaxHeaderValueBytes = n }
}

// WithMaxHeaderCount bounds the number of header lines in one message.
func WithMaxHeaderCount(n int) LimitOption {
	return func(l *Limits) { l.MaxHeaderCount = n }
}

// WithMaxHeaderBlockBytes bounds the aggregate size of the header block.
func WithMaxHeaderBlockBytes(n int) LimitOption {
	return func(l *Limits) { l.MaxHeaderBlockBytes = n }
}

// WithMaxChunkSizeHexDigits bounds a chunk-size line's hex digit count.
func WithMaxChunkSizeHexDigits(n int) LimitOption {
	return func(l *Limits) { l.MaxChunkSizeHexDigits = n }
}

// WithMaxChunkSize bounds a single chunk's decoded size.
func WithMaxChunkSize(n int64) LimitOption {
	return func(l *Limits) { l.MaxChunkSize = n }
}

// WithMaxChunkExtensionBytes bounds a chunk-size line's extension text.
func WithMaxChunkExtensionBytes(n int) LimitOption {
	return func(l *Limits) { l.MaxChunkExtensionBytes = n }
}

// WithMaxBodyBytes bounds the largest Content-Length this decoder accepts.
func WithMaxBodyBytes(n int64) LimitOption {
	return func(l *Limits) { l.MaxBodyBytes = n }
}
