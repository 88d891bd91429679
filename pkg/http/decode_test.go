package http

import (
	"bytes"
	"testing"
)

func TestDecoder_Request(t *testing.T) {
	data := "GET /api HTTP/1.1\r\nHost: example.com\r\nContent-Length: 0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	req := &Request{}
	if err := dec.Decode(req); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if req.Method != "GET" {
		t.Errorf("Method = %q, want GET", req.Method)
	}
	if req.Path != "/api" {
		t.Errorf("Path = %q, want /api", req.Path)
	}
	if req.Version != "1.1" {
		t.Errorf("Version = %q, want 1.1", req.Version)
	}
}

func TestDecoder_RequestWithBody(t *testing.T) {
	data := "POST /api HTTP/1.1\r\nHost: example.com\r\nContent-Length: 11\r\n\r\nhello world"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	req, err := dec.DecodeRequest()
	if err != nil {
		t.Fatalf("DecodeRequest() error = %v", err)
	}
	if string(req.Body) != "hello world" {
		t.Errorf("Body = %q, want hello world", string(req.Body))
	}
}

func TestDecoder_Response(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nHello"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	resp := &Response{}
	if err := dec.Decode(resp); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if resp.Version != "1.1" {
		t.Errorf("Version = %q, want 1.1", resp.Version)
	}
	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.Reason != "OK" {
		t.Errorf("Reason = %q, want OK", resp.Reason)
	}
	if string(resp.Body) != "Hello" {
		t.Errorf("Body = %q, want Hello", string(resp.Body))
	}
}

func TestDecoder_ResponseWithChunkedBody(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n5\r\nHello\r\n7\r\n, World\r\n0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	resp, err := dec.DecodeResponse(false)
	if err != nil {
		t.Fatalf("DecodeResponse() error = %v", err)
	}
	if string(resp.Body) != "Hello, World" {
		t.Errorf("Body = %q, want Hello, World", string(resp.Body))
	}
}

func TestDecoder_TypeMismatch(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	req := &Request{}
	if err := dec.Decode(req); err == nil {
		t.Error("expected error for type mismatch")
	}
}

func TestDecoder_DecodeRequest_Convenience(t *testing.T) {
	data := "GET / HTTP/1.1\r\nHost: example.com\r\nContent-Length: 0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	req, err := dec.DecodeRequest()
	if err != nil {
		t.Fatalf("DecodeRequest() error = %v", err)
	}
	if req.Method != "GET" {
		t.Errorf("Method = %q, want GET", req.Method)
	}
}

func TestDecoder_DecodeResponse_Convenience(t *testing.T) {
	data := "HTTP/1.1 404 Not Found\r\nContent-Length: 9\r\n\r\nNot Found"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	resp, err := dec.DecodeResponse(false)
	if err != nil {
		t.Fatalf("DecodeResponse() error = %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", resp.StatusCode)
	}
	if string(resp.Body) != "Not Found" {
		t.Errorf("Body = %q, want 'Not Found'", string(resp.Body))
	}
}

func TestDecoder_UnsupportedType(t *testing.T) {
	data := "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if err := dec.Decode("not a request or response"); err == nil {
		t.Error("Decode() = nil, want error for unsupported type")
	}
}

func TestDecoder_ResponseTargetWithRequestData(t *testing.T) {
	data := "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	resp := &Response{}
	if err := dec.Decode(resp); err == nil {
		t.Error("Decode() = nil, want error when decoding request into *Response")
	}
}

func TestDecoder_EmptyReader(t *testing.T) {
	dec := NewDecoder(bytes.NewReader([]byte{}))
	if err := dec.Decode(&Request{}); err == nil {
		t.Error("Decode() = nil, want error for empty reader")
	}
}

func TestDecoder_MalformedRequestLine(t *testing.T) {
	data := "BADREQUEST\r\nHost: example.com\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeRequest(); err == nil {
		t.Error("DecodeRequest() = nil, want error for malformed request line")
	}
}

func TestDecoder_MalformedStatusLine(t *testing.T) {
	data := "JUSTONEWORD\r\nContent-Length: 0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeResponse(false); err == nil {
		t.Error("DecodeResponse() = nil, want error for malformed status line")
	}
}

func TestDecoder_MalformedHeader(t *testing.T) {
	data := "GET / HTTP/1.1\r\nMalformedHeaderLine\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeRequest(); err == nil {
		t.Error("DecodeRequest() = nil, want error for malformed header")
	}
}

func TestDecoder_ResponseWithNoBody(t *testing.T) {
	data := "HTTP/1.1 204 No Content\r\nContent-Length: 0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	resp, err := dec.DecodeResponse(false)
	if err != nil {
		t.Fatalf("DecodeResponse() error = %v", err)
	}
	if resp.StatusCode != 204 {
		t.Errorf("StatusCode = %d, want 204", resp.StatusCode)
	}
	if resp.Body != nil {
		t.Errorf("Body = %v, want nil for 204 response", resp.Body)
	}
}

func TestDecoder_RequestChunkedBody(t *testing.T) {
	data := "POST / HTTP/1.1\r\nHost: example.com\r\nTransfer-Encoding: chunked\r\n\r\n5\r\nhello\r\n0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	req, err := dec.DecodeRequest()
	if err != nil {
		t.Fatalf("DecodeRequest() error = %v", err)
	}
	if string(req.Body) != "hello" {
		t.Errorf("Body = %q, want hello", string(req.Body))
	}
}

func TestDecoder_ChunkedBodyTruncated(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n5\r\nhel"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeResponse(false); err == nil {
		t.Error("DecodeResponse() = nil, want error for truncated chunked body")
	}
}

func TestDecoder_ResponseStatusOnly(t *testing.T) {
	data := "HTTP/1.1 201\r\nContent-Length: 0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	resp, err := dec.DecodeResponse(false)
	if err != nil {
		t.Fatalf("DecodeResponse() error = %v", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("StatusCode = %d, want 201", resp.StatusCode)
	}
}

func TestDecoder_RequestWithLargeBody(t *testing.T) {
	body := bytes.Repeat([]byte("x"), 1024)
	data := "POST / HTTP/1.1\r\nHost: example.com\r\nContent-Length: 1024\r\n\r\n" + string(body)
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	req, err := dec.DecodeRequest()
	if err != nil {
		t.Fatalf("DecodeRequest() error = %v", err)
	}
	if len(req.Body) != 1024 {
		t.Errorf("Body length = %d, want 1024", len(req.Body))
	}
}

func TestDecoder_InvalidStatusCode(t *testing.T) {
	data := "HTTP/1.1 abc OK\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeResponse(false); err == nil {
		t.Error("DecodeResponse() = nil, want error for non-numeric status code")
	}
}

func TestDecoder_ResponseBodyTruncated(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\nshort"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeResponse(false); err == nil {
		t.Error("DecodeResponse() = nil, want error for truncated body")
	}
}

func TestDecoder_ChunkedWithExtension(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n5;ext=foo\r\nhello\r\n0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	resp, err := dec.DecodeResponse(false)
	if err != nil {
		t.Fatalf("DecodeResponse() error = %v", err)
	}
	if string(resp.Body) != "hello" {
		t.Errorf("Body = %q, want hello", string(resp.Body))
	}
}

func TestDecoder_ChunkedInvalidSize(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\nZZZZ\r\nhello\r\n0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeResponse(false); err == nil {
		t.Error("DecodeResponse() = nil, want error for invalid chunk size")
	}
}

func TestDecoder_ChunkedEmptyBody(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n0\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	resp, err := dec.DecodeResponse(false)
	if err != nil {
		t.Fatalf("DecodeResponse() error = %v", err)
	}
	if resp.Body != nil {
		t.Errorf("Body = %v, want nil for empty chunked body", resp.Body)
	}
}

func TestDecoder_NoBodyNoContentLength(t *testing.T) {
	// Response with neither Content-Length nor chunked framing reads to EOF.
	data := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeResponse(false); err == nil {
		t.Error("DecodeResponse() = nil, want io.ErrUnexpectedEOF for an unframed body that never ends")
	}
}

func TestDecoder_HeadResponse_NoBodyExpected(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nContent-Length: 1234\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	resp, err := dec.DecodeResponse(true)
	if err != nil {
		t.Fatalf("DecodeResponse(true) error = %v", err)
	}
	if resp.Body != nil {
		t.Errorf("Body = %v, want nil for a HEAD response hint", resp.Body)
	}
}

func TestDecoder_ResponseNoHeaders(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeResponse(false); err == nil {
		t.Error("DecodeResponse() = nil, want error when status line has no headers")
	}
}

func TestDecoder_RequestNoHeaders(t *testing.T) {
	data := "GET / HTTP/1.1\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeRequest(); err == nil {
		t.Error("DecodeRequest() = nil, want error when request line has no headers")
	}
}

func TestDecoder_ChunkedEOFBeforeData(t *testing.T) {
	data := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeResponse(false); err == nil {
		t.Error("DecodeResponse() = nil, want error when chunked body is missing")
	}
}

func TestDecoder_RequestBodyTruncated(t *testing.T) {
	data := "POST / HTTP/1.1\r\nContent-Length: 100\r\n\r\nshort"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	if _, err := dec.DecodeRequest(); err == nil {
		t.Error("DecodeRequest() = nil, want error for truncated body")
	}
}

func TestDecoder_Pipelining(t *testing.T) {
	data := "GET /a HTTP/1.1\r\nHost: x\r\n\r\nGET /b HTTP/1.1\r\nHost: x\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(data)))

	first, err := dec.DecodeRequest()
	if err != nil {
		t.Fatalf("first DecodeRequest() error = %v", err)
	}
	if first.Path != "/a" {
		t.Errorf("first.Path = %q, want /a", first.Path)
	}

	second, err := dec.DecodeRequest()
	if err != nil {
		t.Fatalf("second DecodeRequest() error = %v", err)
	}
	if second.Path != "/b" {
		t.Errorf("second.Path = %q, want /b", second.Path)
	}
}

func TestDecoder_WithLimits(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxHeaderCount = 1
	data := "GET / HTTP/1.1\r\nA: 1\r\nB: 2\r\n\r\n"
	dec := NewDecoderWithLimits(bytes.NewReader([]byte(data)), limits)

	if _, err := dec.DecodeRequest(); err == nil {
		t.Error("DecodeRequest() = nil, want TooManyHeaders error under a tight limit")
	}
}
