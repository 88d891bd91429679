package http

// appendRequest serializes a Request to wire format, deriving framing
// headers from the body per §4.7.1 and encoding with canonicalized header
// names per §4.7.2. Framing is applied to a working copy of req.Headers;
// the caller's Request is left untouched.
func appendRequest(buf []byte, req *Request) ([]byte, error) {
	headers := req.Headers.Clone()
	if err := ApplyFraming(&headers, bodyArg(req.Body), req.Method, false, 0); err != nil {
		return nil, err
	}

	buf = appendRequestLine(buf, req.Method, req.Path, req.Version)
	buf = EncodeHeaders(buf, headers, EncodeHeadersOptions{})
	buf = appendCRLF(buf)
	if len(req.Body) > 0 {
		buf = append(buf, req.Body...)
	}
	return buf, nil
}

// appendResponse serializes a Response to wire format, deriving framing
// headers from the body per §4.7.1.
func appendResponse(buf []byte, resp *Response) ([]byte, error) {
	headers := resp.Headers.Clone()
	if err := ApplyFraming(&headers, bodyArg(resp.Body), "", true, resp.StatusCode); err != nil {
		return nil, err
	}

	buf = appendStatusLine(buf, resp.Version, resp.StatusCode, resp.Reason)
	buf = EncodeHeaders(buf, headers, EncodeHeadersOptions{})
	buf = appendCRLF(buf)
	if len(resp.Body) > 0 {
		buf = append(buf, resp.Body...)
	}
	return buf, nil
}

// bodyArg adapts a []byte body field to ApplyFraming's nil/[]byte
// distinction: a nil slice must reach ApplyFraming as an untyped nil, not
// a non-nil interface wrapping a nil slice.
func bodyArg(body []byte) interface{} {
	if body == nil {
		return nil
	}
	return body
}
