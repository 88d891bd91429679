package http

import "github.com/quanxiaoxiao/http-parser/internal/wire"

// ErrorKind identifies a decoder or encoder error per the taxonomy in
// spec §7. Kinds are stable and safe to switch on.
type ErrorKind = wire.ErrorKind

// Error kinds, re-exported for callers that want to switch on
// err.(*WireError).Kind without importing the internal package.
const (
	InvalidLineEnding      = wire.InvalidLineEnding
	LineTooLarge           = wire.LineTooLarge
	InvalidStartLine       = wire.InvalidStartLine
	UnsupportedHTTPVersion = wire.UnsupportedHTTPVersion
	URITooLarge            = wire.URITooLarge
	InvalidStatusCode      = wire.InvalidStatusCode
	InvalidReasonPhrase    = wire.InvalidReasonPhrase
	InvalidHeaderLine      = wire.InvalidHeaderLine
	EmptyHeaderName        = wire.EmptyHeaderName
	HeaderTooLarge         = wire.HeaderTooLarge
	TooManyHeaders         = wire.TooManyHeaders
	HeaderBlockTooLarge    = wire.HeaderBlockTooLarge
	InvalidHeaderFolding   = wire.InvalidHeaderFolding
	InvalidContentLength   = wire.InvalidContentLength
	ContentLengthTooLarge  = wire.ContentLengthTooLarge
	InvalidChunkSize       = wire.InvalidChunkSize
	ChunkSizeTooLarge      = wire.ChunkSizeTooLarge
	ChunkExtensionTooLarge = wire.ChunkExtensionTooLarge
	MissingChunkCRLF       = wire.MissingChunkCRLF
	AlreadyFinished        = wire.AlreadyFinished
	InvalidArgument        = wire.InvalidArgument
)

// WireError is the uniform error type raised by this package's decoders
// and encoders. It carries a stable Kind, a human-readable Message, and
// a Preview of the offending input (at most 50 bytes, "…"-suffixed when
// truncated).
type WireError = wire.Error
