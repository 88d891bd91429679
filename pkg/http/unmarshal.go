package http

import (
	"bytes"
	"fmt"
)

// Unmarshal parses the HTTP wire-format data and stores the result in v.
//
// v must be a *Request or *Response. The function auto-detects the message
// type based on whether data starts with "HTTP/" (response) or not
// (request). data must hold a complete message; a decoder fed a partial
// buffer returns an incomplete-message error rather than blocking. For a
// stream that arrives in arbitrary chunks, use RequestDecoder/
// ResponseDecoder directly.
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return fmt.Errorf("http: Unmarshal(nil)")
	}

	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalHTTP(data)
	}

	isResp := bytes.HasPrefix(data, []byte("HTTP/"))

	switch target := v.(type) {
	case *Request:
		if isResp {
			return fmt.Errorf("http: data appears to be a response but target is *Request")
		}
		req, err := UnmarshalRequest(data)
		if err != nil {
			return err
		}
		*target = *req
		return nil

	case *Response:
		if !isResp {
			return fmt.Errorf("http: data appears to be a request but target is *Response")
		}
		resp, err := UnmarshalResponse(data)
		if err != nil {
			return err
		}
		*target = *resp
		return nil

	default:
		return fmt.Errorf("http: Unmarshal unsupported type %T (expected *Request or *Response)", v)
	}
}

// UnmarshalRequest parses HTTP wire-format data as a request.
func UnmarshalRequest(data []byte) (*Request, error) {
	rd := NewRequestDecoder(DefaultLimits())
	if err := rd.Decode(data); err != nil {
		return nil, fmt.Errorf("http: unmarshal request: %w", err)
	}
	if rd.Phase() == PhaseError {
		return nil, fmt.Errorf("http: unmarshal request: %w", rd.Err())
	}
	if rd.Phase() != PhaseFinished {
		return nil, fmt.Errorf("http: unmarshal request: incomplete message")
	}
	return rd.Request(), nil
}

// UnmarshalResponse parses HTTP wire-format data as a response.
func UnmarshalResponse(data []byte) (*Response, error) {
	return unmarshalResponseHint(data, false)
}

// UnmarshalResponseForRequest parses HTTP wire-format data as a response,
// passing noBodyExpected=true when the caller knows the corresponding
// request method was HEAD — the wire format alone cannot reveal that.
func UnmarshalResponseForRequest(data []byte, noBodyExpected bool) (*Response, error) {
	return unmarshalResponseHint(data, noBodyExpected)
}

func unmarshalResponseHint(data []byte, noBodyExpected bool) (*Response, error) {
	rd := NewResponseDecoder(DefaultLimits(), noBodyExpected)
	if err := rd.Decode(data); err != nil {
		return nil, fmt.Errorf("http: unmarshal response: %w", err)
	}
	if rd.Phase() == PhaseError {
		return nil, fmt.Errorf("http: unmarshal response: %w", rd.Err())
	}
	if rd.Phase() != PhaseFinished {
		return nil, fmt.Errorf("http: unmarshal response: incomplete message")
	}
	return rd.Response(), nil
}

// DetectMessageType returns "request" or "response" based on the data
// prefix. Data starting with "HTTP/" is detected as a response; everything
// else as a request.
func DetectMessageType(data []byte) string {
	if bytes.HasPrefix(data, []byte("HTTP/")) {
		return "response"
	}
	return "request"
}
