package http

import (
	"strconv"
	"strings"
)

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendRequestLine appends "METHOD PATH HTTP/VERSION\r\n" to buf. A blank
// method, path, or version falls back to GET, /, and 1.1 respectively.
func appendRequestLine(buf []byte, method, path, version string) []byte {
	if method == "" {
		method = "GET"
	}
	if path == "" {
		path = "/"
	}
	if version == "" {
		version = "1.1"
	}
	buf = append(buf, strings.ToUpper(method)...)
	buf = append(buf, ' ')
	buf = append(buf, path...)
	buf = append(buf, ' ')
	buf = append(buf, "HTTP/"...)
	buf = append(buf, version...)
	return appendCRLF(buf)
}

// appendStatusLine appends "HTTP/VERSION STATUS REASON\r\n" to buf. A
// blank reason falls back to the canonical reason phrase for statusCode.
func appendStatusLine(buf []byte, version string, statusCode int, reason string) []byte {
	if version == "" {
		version = "1.1"
	}
	if reason == "" {
		reason = canonicalReasonPhrase(statusCode)
	}
	buf = append(buf, "HTTP/"...)
	buf = append(buf, version...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(statusCode), 10)
	buf = append(buf, ' ')
	buf = append(buf, reason...)
	return appendCRLF(buf)
}

// EncodeRequestLine returns the wire bytes of a request-line, per §4.7.2.
func EncodeRequestLine(method, path, version string) []byte {
	return appendRequestLine(nil, method, path, version)
}

// EncodeResponseLine returns the wire bytes of a status-line, per §4.7.2.
func EncodeResponseLine(version string, statusCode int, statusText string) []byte {
	return appendStatusLine(nil, version, statusCode, statusText)
}

// EncodeHTTPLine appends CRLF to line.
func EncodeHTTPLine(line []byte) []byte {
	return appendCRLF(append([]byte(nil), line...))
}

// EncodeHTTPLines concatenates each line in lines followed by CRLF.
func EncodeHTTPLines(lines [][]byte) []byte {
	var buf []byte
	for _, l := range lines {
		buf = append(buf, l...)
		buf = appendCRLF(buf)
	}
	return buf
}
