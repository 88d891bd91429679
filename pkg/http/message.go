package http

import "github.com/quanxiaoxiao/http-parser/internal/wire"

// Phase is a message state machine's current phase (spec §3).
type Phase = wire.Phase

const (
	PhaseStartLine   = wire.PhaseStartLine
	PhaseHeaders     = wire.PhaseHeaders
	PhaseBodyFixed   = wire.PhaseBodyFixed
	PhaseBodyChunked = wire.PhaseBodyChunked
	PhaseBodyEOF     = wire.PhaseBodyEOF
	PhaseFinished    = wire.PhaseFinished
	PhaseError       = wire.PhaseError
)

// EventKind identifies one entry in a decoder's event log (spec §4.6).
type EventKind = wire.EventKind

const (
	EventMessageBegin    = wire.EventMessageBegin
	EventStartLine       = wire.EventStartLine
	EventHeadersBegin    = wire.EventHeadersBegin
	EventHeader          = wire.EventHeader
	EventHeadersComplete = wire.EventHeadersComplete
	EventBodyBegin       = wire.EventBodyBegin
	EventBodyChunk       = wire.EventBodyChunk
	EventBodyComplete    = wire.EventBodyComplete
	EventMessageComplete = wire.EventMessageComplete
	EventError           = wire.EventError
)

// Event is one entry in a decoder's event log.
type Event = wire.Event

// RequestDecoder incrementally decodes one HTTP request across
// arbitrarily chunked input. Feed it bytes with Decode until Phase
// reports Finished or Error; after Finished, Buffer holds any bytes
// belonging to the next pipelined request.
type RequestDecoder struct {
	state *wire.MessageState
}

// NewRequestDecoder creates a decoder for one request, in phase
// StartLine.
func NewRequestDecoder(limits Limits) *RequestDecoder {
	return &RequestDecoder{state: wire.NewRequestState(limits)}
}

// Decode feeds the next chunk of wire bytes into the decoder.
func (d *RequestDecoder) Decode(input []byte) error {
	return d.state.Decode(input)
}

// Phase returns the decoder's current phase.
func (d *RequestDecoder) Phase() Phase { return d.state.Phase }

// Events returns the event log accumulated so far, in order.
func (d *RequestDecoder) Events() []Event { return d.state.Events }

// Err returns the terminal error, if Phase is Error.
func (d *RequestDecoder) Err() *WireError { return d.state.Error }

// Buffer returns bytes left over once Phase is Finished — the
// pipelining handoff for the next request on the same connection.
func (d *RequestDecoder) Buffer() []byte { return d.state.Buffer() }

// StartLine returns the parsed request-line, once Phase has passed
// StartLine.
func (d *RequestDecoder) StartLine() *wire.RequestLine { return d.state.RequestLine }

// Headers returns the normalized header view, once Phase has passed
// Headers.
func (d *RequestDecoder) Headers() wire.NormalizedHeaders { return d.state.Headers }

// RawHeaders returns the raw, order-preserving header view, once Phase
// has passed Headers.
func (d *RequestDecoder) RawHeaders() Headers { return rawHeadersToHeaders(d.state.RawHeaders) }

// Request assembles the decoded pieces into a Request value. It may be
// called at any point after StartLine completes; Body is only populated
// once Phase is Finished.
func (d *RequestDecoder) Request() *Request {
	if d.state.RequestLine == nil {
		return nil
	}
	return &Request{
		Method:  d.state.RequestLine.Method,
		Path:    d.state.RequestLine.Path,
		Version: d.state.RequestLine.Version,
		Headers: rawHeadersToHeaders(d.state.RawHeaders),
		Body:    collectBodyChunks(d.state),
	}
}

// ResponseDecoder incrementally decodes one HTTP response across
// arbitrarily chunked input.
type ResponseDecoder struct {
	state *wire.MessageState
}

// NewResponseDecoder creates a decoder for one response, in phase
// StartLine. noBodyExpected should be true when the caller knows the
// corresponding request method was HEAD.
func NewResponseDecoder(limits Limits, noBodyExpected bool) *ResponseDecoder {
	return &ResponseDecoder{state: wire.NewResponseState(limits, noBodyExpected)}
}

// Decode feeds the next chunk of wire bytes into the decoder.
func (d *ResponseDecoder) Decode(input []byte) error {
	return d.state.Decode(input)
}

// Phase returns the decoder's current phase.
func (d *ResponseDecoder) Phase() Phase { return d.state.Phase }

// Events returns the event log accumulated so far, in order.
func (d *ResponseDecoder) Events() []Event { return d.state.Events }

// Err returns the terminal error, if Phase is Error.
func (d *ResponseDecoder) Err() *WireError { return d.state.Error }

// Buffer returns bytes left over once Phase is Finished.
func (d *ResponseDecoder) Buffer() []byte { return d.state.Buffer() }

// StartLine returns the parsed status-line, once Phase has passed
// StartLine.
func (d *ResponseDecoder) StartLine() *wire.ResponseLine { return d.state.ResponseLine }

// Headers returns the normalized header view, once Phase has passed
// Headers.
func (d *ResponseDecoder) Headers() wire.NormalizedHeaders { return d.state.Headers }

// RawHeaders returns the raw, order-preserving header view.
func (d *ResponseDecoder) RawHeaders() Headers { return rawHeadersToHeaders(d.state.RawHeaders) }

// Response assembles the decoded pieces into a Response value. Body is
// only populated once Phase is Finished.
func (d *ResponseDecoder) Response() *Response {
	if d.state.ResponseLine == nil {
		return nil
	}
	return &Response{
		Version:    d.state.ResponseLine.Version,
		StatusCode: d.state.ResponseLine.StatusCode,
		Reason:     d.state.ResponseLine.StatusText,
		Headers:    rawHeadersToHeaders(d.state.RawHeaders),
		Body:       collectBodyChunks(d.state),
	}
}

func collectBodyChunks(state *wire.MessageState) []byte {
	chunks := state.BodyChunks()
	if chunks == nil {
		return nil
	}
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	if total == 0 {
		return nil
	}
	out := make([]byte, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
