package wire

import (
	"net/http"
	"strconv"
	"strings"
)

// RequestLine is a parsed request start-line.
type RequestLine struct {
	Raw     string
	Method  string
	Path    string
	Version string // "1.0" or "1.1"
}

// ResponseLine is a parsed response start-line.
type ResponseLine struct {
	Raw        string
	Version    string
	StatusCode int
	StatusText string
}

// ParseRequestLine parses "TOKEN SP TARGET SP HTTP/D.D", tolerating
// surrounding whitespace. Only HTTP/1.0 and HTTP/1.1 are accepted.
func ParseRequestLine(line string, maxURIBytes int) (RequestLine, error) {
	raw := line
	trimmed := strings.Trim(line, " \t")

	sp1 := strings.IndexByte(trimmed, ' ')
	if sp1 < 0 {
		return RequestLine{}, newErr(InvalidStartLine, "missing method separator", []byte(raw))
	}
	method := trimmed[:sp1]
	if method == "" {
		return RequestLine{}, newErr(InvalidStartLine, "empty method", []byte(raw))
	}

	rest := strings.TrimLeft(trimmed[sp1+1:], " \t")
	sp2 := strings.IndexByte(rest, ' ')
	if sp2 < 0 {
		return RequestLine{}, newErr(InvalidStartLine, "missing version separator", []byte(raw))
	}
	target := rest[:sp2]
	if target == "" {
		return RequestLine{}, newErr(InvalidStartLine, "empty request-target", []byte(raw))
	}
	if len(target) > maxURIBytes {
		return RequestLine{}, newErr(URITooLarge, "request-target exceeds configured maximum", []byte(target))
	}

	versionField := strings.TrimLeft(rest[sp2+1:], " \t")
	version, err := parseVersionToken(versionField, raw)
	if err != nil {
		return RequestLine{}, err
	}

	return RequestLine{
		Raw:     raw,
		Method:  internMethod(strings.ToUpper(method)),
		Path:    target,
		Version: version,
	}, nil
}

// ParseResponseLine parses "HTTP/D.D SP 3DIGIT (SP REASON)?".
func ParseResponseLine(line string, maxReasonPhraseBytes int) (ResponseLine, error) {
	raw := line
	trimmed := strings.Trim(line, " \t")

	sp1 := strings.IndexByte(trimmed, ' ')
	if sp1 < 0 {
		return ResponseLine{}, newErr(InvalidStartLine, "missing status-code separator", []byte(raw))
	}
	versionField := trimmed[:sp1]
	version, err := parseVersionToken(versionField, raw)
	if err != nil {
		return ResponseLine{}, err
	}

	rest := strings.TrimLeft(trimmed[sp1+1:], " \t")
	sp2 := strings.IndexByte(rest, ' ')
	var codeField, reasonField string
	if sp2 < 0 {
		codeField = rest
	} else {
		codeField = rest[:sp2]
		reasonField = strings.TrimLeft(rest[sp2+1:], " \t")
	}

	if len(codeField) != 3 {
		return ResponseLine{}, newErr(InvalidStatusCode, "status code must be exactly 3 digits", []byte(raw))
	}
	code, convErr := strconv.Atoi(codeField)
	if convErr != nil {
		return ResponseLine{}, newErr(InvalidStatusCode, "status code is not an integer", []byte(raw))
	}
	if code < 100 || code > 599 {
		return ResponseLine{}, newErr(InvalidStatusCode, "status code out of range [100,599]", []byte(raw))
	}

	if len(reasonField) > maxReasonPhraseBytes {
		return ResponseLine{}, newErr(InvalidReasonPhrase, "reason phrase exceeds configured maximum", []byte(reasonField))
	}
	if strings.TrimSpace(reasonField) == "" {
		reasonField = CanonicalReasonPhrase(code)
	}

	return ResponseLine{
		Raw:        raw,
		Version:    version,
		StatusCode: code,
		StatusText: reasonField,
	}, nil
}

func parseVersionToken(field, raw string) (string, error) {
	if len(field) < 6 || !strings.EqualFold(field[:5], "HTTP/") {
		return "", newErr(InvalidStartLine, "missing HTTP version token", []byte(raw))
	}
	digits := field[5:]
	switch digits {
	case "1.0":
		return "1.0", nil
	case "1.1":
		return "1.1", nil
	default:
		return "", newErr(UnsupportedHTTPVersion, "only HTTP/1.0 and HTTP/1.1 are accepted", []byte(field))
	}
}

// CanonicalReasonPhrase returns the RFC-defined reason phrase for a status
// code, or "Unknown" when no canonical text exists.
func CanonicalReasonPhrase(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "Unknown"
}
