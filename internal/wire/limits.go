package wire

// Limits bounds every syntactic element a decoder will accept, so that no
// combination of adversarial inputs can force unbounded memory growth.
// All fields are positive integers; DefaultLimits returns the spec's
// documented defaults.
type Limits struct {
	MaxLineBytes          int
	MaxURIBytes           int
	MaxReasonPhraseBytes  int
	MaxHeaderNameBytes    int
	MaxHeaderValueBytes   int
	MaxHeaderCount        int
	MaxHeaderBlockBytes   int
	MaxChunkSizeHexDigits int
	MaxChunkSize          int64
	MaxChunkExtensionBytes int
	MaxBodyBytes          int64
}

// DefaultLimits returns the spec §3 documented defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxLineBytes:           8 * 1024,
		MaxURIBytes:            8 * 1024,
		MaxReasonPhraseBytes:   512,
		MaxHeaderNameBytes:     256,
		MaxHeaderValueBytes:    8 * 1024,
		MaxHeaderCount:         100,
		MaxHeaderBlockBytes:    32 * 1024,
		MaxChunkSizeHexDigits:  8,
		MaxChunkSize:           1 << 34, // generous; bounded separately by MaxBodyBytes in practice
		MaxChunkExtensionBytes: 1024,
		MaxBodyBytes:           1 << 30,
	}
}
