package validate

// ContentEncodingResult is the outcome of validating a Content-Encoding
// header value.
type ContentEncodingResult struct {
	Valid     bool
	Reason    string
	Encodings []string
}

func invalidContentEncoding(reason string) ContentEncodingResult {
	return ContentEncodingResult{Valid: false, Reason: reason}
}

var knownEncodings = map[string]bool{
	"gzip":     true,
	"br":       true,
	"deflate":  true,
	"identity": true,
	"zstd":     true,
}

// ContentEncodingOptions configures ContentEncoding's strictness.
type ContentEncodingOptions struct {
	// StrictKnownEncodings restricts tokens to {gzip, br, deflate, identity, zstd}.
	StrictKnownEncodings bool
	// ForbidIdentityMix rejects "identity" combined with any other encoding.
	ForbidIdentityMix bool
}

// ContentEncoding validates a comma-separated list of encoding tokens per
// spec §4.8.
func ContentEncoding(value string, opts ContentEncodingOptions) ContentEncodingResult {
	if containsCRLFOrNUL(value) {
		return invalidContentEncoding("contains CR, LF, or NUL")
	}

	var encodings []string
	seen := map[string]bool{}
	hasIdentity := false
	for _, part := range splitByte(value, ',') {
		tok := toLower(trimOWS(part))
		if !isToken(tok) {
			return invalidContentEncoding("invalid encoding token")
		}
		if seen[tok] {
			return invalidContentEncoding("duplicate encoding")
		}
		seen[tok] = true
		if opts.StrictKnownEncodings && !knownEncodings[tok] {
			return invalidContentEncoding("unknown encoding: " + tok)
		}
		if tok == "identity" {
			hasIdentity = true
		}
		encodings = append(encodings, tok)
	}
	if len(encodings) == 0 {
		return invalidContentEncoding("empty")
	}
	if opts.ForbidIdentityMix && hasIdentity && len(encodings) > 1 {
		return invalidContentEncoding("identity cannot be combined with other encodings")
	}
	return ContentEncodingResult{Valid: true, Encodings: encodings}
}
