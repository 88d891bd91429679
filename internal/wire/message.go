package wire

import "strconv"

// Phase is the top-level message state machine's current phase.
type Phase int

const (
	PhaseStartLine Phase = iota
	PhaseHeaders
	PhaseBodyFixed
	PhaseBodyChunked
	PhaseBodyEOF
	PhaseFinished
	PhaseError
)

// EventKind identifies one entry in a MessageState's Events log.
type EventKind int

const (
	EventMessageBegin EventKind = iota
	EventStartLine
	EventHeadersBegin
	EventHeader
	EventHeadersComplete
	EventBodyBegin
	EventBodyChunk
	EventBodyComplete
	EventMessageComplete
	EventError
)

// Event is one entry in a MessageState's event log (spec §4.6).
type Event struct {
	Kind        EventKind
	HeaderName  string
	HeaderValue string
	BodyChunk   []byte
	TotalSize   int64
	Err         *Error
}

// MessageState sequences start-line -> headers -> body -> optional
// trailers for either a request or a response, selecting body framing
// from the parsed headers per RFC 7230's precedence rules.
type MessageState struct {
	Limits Limits
	Phase  Phase

	IsResponse     bool
	NoBodyExpected bool // caller's "HEAD response" hint; responses only

	// RejectObsFold selects §4.3's open question: reject (true) or accept
	// (false, the default) obsolete header line-folding.
	RejectObsFold bool
	// StrictFramingConflict selects §4.6/§9's open question: when both
	// Content-Length and Transfer-Encoding: chunked are present, reject
	// the message (true) instead of the default prefer-TE-and-strip-CL.
	StrictFramingConflict bool

	RequestLine  *RequestLine
	ResponseLine *ResponseLine

	Headers NormalizedHeaders
	RawHeaders []RawHeaderPair

	Events []Event
	Error  *Error

	buffer       []byte
	headersState *HeadersState
	fixedBody    *FixedBodyState
	chunkedBody  *ChunkedBodyState
	totalBody    int64
}

// NewRequestState creates a message state machine for decoding a request.
func NewRequestState(limits Limits) *MessageState {
	m := &MessageState{Limits: limits}
	m.Events = append(m.Events, Event{Kind: EventMessageBegin})
	return m
}

// NewResponseState creates a message state machine for decoding a
// response. noBodyExpected should be set when the caller knows the
// request method was HEAD, since the wire format alone cannot reveal
// that.
func NewResponseState(limits Limits, noBodyExpected bool) *MessageState {
	m := &MessageState{Limits: limits, IsResponse: true, NoBodyExpected: noBodyExpected}
	m.Events = append(m.Events, Event{Kind: EventMessageBegin})
	return m
}

// Buffer returns bytes left over after FINISHED — the pipelining handoff
// channel for the next message on the same connection.
func (m *MessageState) Buffer() []byte { return m.buffer }

// BodyChunks returns the decoded body, still split into the chunks it
// arrived in. Returns nil before a body decoder has been selected.
func (m *MessageState) BodyChunks() [][]byte {
	switch {
	case m.fixedBody != nil:
		return m.fixedBody.Chunks()
	case m.chunkedBody != nil:
		return m.chunkedBody.Chunks()
	default:
		return nil
	}
}

// Decode advances the state machine with the next chunk of wire bytes,
// in whatever boundary the caller received them.
func (m *MessageState) Decode(input []byte) error {
	if m.Phase == PhaseFinished || m.Phase == PhaseError {
		if len(input) == 0 {
			return nil
		}
		err := newErr(AlreadyFinished, "Decode called after message reached a terminal phase", input)
		return err
	}

	data := input
	if len(m.buffer) > 0 {
		data = append(m.buffer, input...)
		m.buffer = nil
	}

	for {
		switch m.Phase {
		case PhaseStartLine:
			advanced, err := m.decodeStartLine(data)
			if err != nil {
				m.fail(err)
				return err
			}
			if !advanced {
				return nil
			}
			data = m.buffer
			m.buffer = nil

		case PhaseHeaders:
			if m.headersState == nil {
				m.headersState = NewHeadersState(m.Limits)
				m.Events = append(m.Events, Event{Kind: EventHeadersBegin})
			}
			if err := m.headersState.DecodeHeaders(data, m.RejectObsFold); err != nil {
				m.fail(err)
				return err
			}
			data = nil
			if !m.headersState.Finished {
				return nil
			}
			for _, p := range m.headersState.Builder().Raw() {
				m.Events = append(m.Events, Event{Kind: EventHeader, HeaderName: p.Name, HeaderValue: p.Value})
			}
			m.Headers = m.headersState.Builder().Normalized()
			m.RawHeaders = m.headersState.Builder().Raw()
			m.Events = append(m.Events, Event{Kind: EventHeadersComplete})

			leftover := m.headersState.buffer
			if err := m.selectFraming(); err != nil {
				m.fail(err)
				return err
			}
			data = leftover

		case PhaseBodyFixed:
			if err := m.fixedBody.Decode(data); err != nil {
				m.fail(err)
				return err
			}
			data = nil
			if m.fixedBody.Phase != FixedBodyFinished {
				return nil
			}
			m.totalBody = m.fixedBody.DecodedBytes()
			m.buffer = m.fixedBody.Buffer()
			m.finish()
			return nil

		case PhaseBodyChunked:
			if err := m.chunkedBody.Decode(data); err != nil {
				m.fail(err)
				return err
			}
			data = nil
			if m.chunkedBody.Phase != ChunkedFinished {
				return nil
			}
			m.totalBody = m.chunkedBody.DecodedBytes()
			m.buffer = m.chunkedBody.Buffer()
			for k, vals := range m.chunkedBody.Trailers() {
				for _, v := range vals {
					m.Headers[k] = append(m.Headers[k], v)
					m.RawHeaders = append(m.RawHeaders, RawHeaderPair{Name: k, Value: v})
				}
			}
			m.finish()
			return nil

		case PhaseBodyEOF:
			if len(data) > 0 {
				m.Events = append(m.Events, Event{Kind: EventBodyChunk, BodyChunk: data})
			}
			return nil

		case PhaseFinished, PhaseError:
			// Reached mid-loop (e.g. a zero-length body completed the
			// message while processing the headers' trailing bytes):
			// anything left over belongs to the next pipelined message.
			if len(data) > 0 {
				m.buffer = append([]byte(nil), data...)
			}
			return nil
		}
	}
}

func (m *MessageState) decodeStartLine(data []byte) (bool, error) {
	ln, ok, err := ScanLine(data, 0, m.Limits.MaxLineBytes)
	if err != nil {
		return false, err
	}
	if !ok {
		m.buffer = append([]byte(nil), data...)
		return false, nil
	}
	line := string(ln.Bytes)
	if m.IsResponse {
		rl, err := ParseResponseLine(line, m.Limits.MaxReasonPhraseBytes)
		if err != nil {
			return false, err
		}
		m.ResponseLine = &rl
	} else {
		rl, err := ParseRequestLine(line, m.Limits.MaxURIBytes)
		if err != nil {
			return false, err
		}
		m.RequestLine = &rl
	}
	m.Events = append(m.Events, Event{Kind: EventStartLine})
	m.Phase = PhaseHeaders
	rest := data[ln.BytesConsumed:]
	m.buffer = append([]byte(nil), rest...)
	return true, nil
}

// selectFraming consults the parsed headers to choose body framing per
// RFC 7230 precedence: Transfer-Encoding: chunked wins over Content-Length.
func (m *MessageState) selectFraming() error {
	if m.bodiless() {
		m.finish()
		return nil
	}

	te := m.Headers.Joined("transfer-encoding")
	isChunked := containsToken(te, "chunked")

	clValues := m.Headers["content-length"]
	hasCL := len(clValues) > 0

	if isChunked && hasCL {
		if m.StrictFramingConflict {
			return newErr(InvalidContentLength, "both Content-Length and Transfer-Encoding: chunked present", []byte(te))
		}
		delete(m.Headers, "content-length")
		m.removeRawHeader("content-length")
	}

	if isChunked {
		m.chunkedBody = NewChunkedBodyState(m.Limits)
		m.chunkedBody.RejectObsFold = m.RejectObsFold
		m.Phase = PhaseBodyChunked
		m.Events = append(m.Events, Event{Kind: EventBodyBegin})
		return nil
	}

	if hasCL {
		contentLength, ok, conflict := parseContentLengthValues(clValues)
		if conflict {
			return newErr(InvalidContentLength, "conflicting Content-Length values", []byte(m.Headers.Joined("content-length")))
		}
		if !ok {
			if m.IsResponse {
				return newErr(InvalidContentLength, "Content-Length is not a valid non-negative integer", []byte(m.Headers.Joined("content-length")))
			}
			m.Phase = PhaseFinished
			m.finish()
			return nil
		}
		fb, err := NewFixedBodyState(contentLength, m.Limits)
		if err != nil {
			return err
		}
		m.fixedBody = fb
		m.Phase = PhaseBodyFixed
		m.Events = append(m.Events, Event{Kind: EventBodyBegin})
		if fb.Phase == FixedBodyFinished {
			m.totalBody = 0
			m.finish()
		}
		return nil
	}

	if m.IsResponse {
		m.Phase = PhaseBodyEOF
		return nil
	}
	m.finish()
	return nil
}

func (m *MessageState) bodiless() bool {
	if !m.IsResponse {
		return false
	}
	if m.NoBodyExpected {
		return true
	}
	code := m.ResponseLine.StatusCode
	return (code >= 100 && code <= 199) || code == 204 || code == 304
}

func (m *MessageState) finish() {
	m.Phase = PhaseFinished
	m.Events = append(m.Events, Event{Kind: EventBodyComplete, TotalSize: m.totalBody})
	m.Events = append(m.Events, Event{Kind: EventMessageComplete})
}

func (m *MessageState) fail(err error) {
	m.Phase = PhaseError
	if e, ok := err.(*Error); ok {
		m.Error = e
		m.Events = append(m.Events, Event{Kind: EventError, Err: e})
	}
}

func (m *MessageState) removeRawHeader(lowerName string) {
	kept := m.RawHeaders[:0]
	for _, p := range m.RawHeaders {
		if lowerCaseEquals(p.Name, lowerName) {
			continue
		}
		kept = append(kept, p)
	}
	m.RawHeaders = kept
}

func lowerCaseEquals(s, lower string) bool {
	if len(s) != len(lower) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[i] {
			return false
		}
	}
	return true
}

func containsToken(joined, token string) bool {
	for _, part := range splitAndTrim(joined, ',') {
		if lowerCaseEquals(part, token) {
			return true
		}
	}
	return false
}

func splitAndTrim(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == sep {
			part := trimASCIISpace(s[start:i])
			out = append(out, part)
			start = i + 1
		}
	}
	return out
}

func trimASCIISpace(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}

// parseContentLengthValues parses one or more raw Content-Length values
// (already whitespace-trimmed). ok is false when the single value isn't a
// valid non-negative integer; conflict is true when multiple values
// disagree on the integer.
func parseContentLengthValues(values []string) (n int64, ok bool, conflict bool) {
	var first int64
	for i, v := range values {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed < 0 {
			return 0, false, false
		}
		if i == 0 {
			first = parsed
		} else if parsed != first {
			return 0, false, true
		}
	}
	return first, true, false
}
