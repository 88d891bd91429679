package wire

// FixedBodyPhase is the externally observable phase of a FixedBodyState.
type FixedBodyPhase int

const (
	FixedBodyData FixedBodyPhase = iota
	FixedBodyFinished
)

// FixedBodyState decodes a Content-Length-framed body: it consumes exactly
// ContentLength bytes across however many Decode calls the caller makes.
type FixedBodyState struct {
	Limits        Limits
	Phase         FixedBodyPhase
	ContentLength int64
	remaining     int64
	decoded       int64
	chunks        [][]byte
	buffer        []byte
}

// NewFixedBodyState constructs a fixed-length body decoder. contentLength
// must be non-negative and no larger than limits.MaxBodyBytes.
func NewFixedBodyState(contentLength int64, limits Limits) (*FixedBodyState, error) {
	if contentLength < 0 {
		return nil, argErr("contentLength must be non-negative")
	}
	if contentLength > limits.MaxBodyBytes {
		return nil, newErr(ContentLengthTooLarge, "content-length exceeds configured maximum", nil)
	}
	s := &FixedBodyState{Limits: limits, ContentLength: contentLength, remaining: contentLength}
	if contentLength == 0 {
		s.Phase = FixedBodyFinished
	}
	return s, nil
}

// Decode consumes up to s.remaining bytes of input, appending them to the
// accumulated body chunks. Overflow beyond ContentLength is left in
// s.Buffer() for the caller to hand to the next message (pipelining).
func (s *FixedBodyState) Decode(input []byte) error {
	if s.Phase == FixedBodyFinished {
		if len(input) == 0 {
			return nil
		}
		return newErr(AlreadyFinished, "Decode called after fixed-length body finished", input)
	}
	if len(input) == 0 {
		return nil
	}

	accept := int64(len(input))
	if accept > s.remaining {
		accept = s.remaining
	}
	if accept > 0 {
		chunk := make([]byte, accept)
		copy(chunk, input[:accept])
		s.chunks = append(s.chunks, chunk)
		s.decoded += accept
		s.remaining -= accept
	}
	if int64(len(input)) > accept {
		s.buffer = append([]byte(nil), input[accept:]...)
	}
	if s.remaining == 0 {
		s.Phase = FixedBodyFinished
	}
	return nil
}

// Chunks returns the accumulated body chunks in arrival order.
func (s *FixedBodyState) Chunks() [][]byte { return s.chunks }

// Buffer returns bytes left over after ContentLength was satisfied —
// the pipelining handoff channel for the next message.
func (s *FixedBodyState) Buffer() []byte { return s.buffer }

// DecodedBytes returns the number of body bytes decoded so far.
func (s *FixedBodyState) DecodedBytes() int64 { return s.decoded }

// RemainingBytes returns how many more bytes are needed to finish.
func (s *FixedBodyState) RemainingBytes() int64 { return s.remaining }

// Progress returns decoded/contentLength, defined as 1 when ContentLength
// is 0.
func (s *FixedBodyState) Progress() float64 {
	if s.ContentLength == 0 {
		return 1
	}
	return float64(s.decoded) / float64(s.ContentLength)
}
