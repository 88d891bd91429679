package wire

import "bytes"

// ChunkedBodyPhase is the externally observable phase of a
// ChunkedBodyState. EXTENSION is folded into SIZE — chunk-extension
// bytes are consumed as part of parsing the size line, never as a
// separately observable phase, matching spec §4.5.2's note that
// EXTENSION is an implementation detail.
type ChunkedBodyPhase int

const (
	ChunkedSize ChunkedBodyPhase = iota
	ChunkedData
	ChunkedCRLF
	ChunkedTrailer
	ChunkedFinished
)

// ChunkedBodyState decodes a chunked-transfer-encoded body:
// SIZE -> DATA -> CRLF -> (SIZE | TRAILER) -> FINISHED.
type ChunkedBodyState struct {
	Limits            Limits
	Phase             ChunkedBodyPhase
	RejectObsFold     bool
	currentChunkSize  int64
	remainingChunk    int64
	decoded           int64
	chunks            [][]byte
	trailers          *HeaderBuilder
	trailerState      *HeadersState
	buffer            []byte
}

// NewChunkedBodyState constructs a chunked body decoder in the SIZE phase.
func NewChunkedBodyState(limits Limits) *ChunkedBodyState {
	return &ChunkedBodyState{Limits: limits, trailers: NewHeaderBuilder()}
}

// Decode advances the state machine as far as the available input allows,
// processing exactly one phase transition per loop iteration and pausing
// (returning with the unconsumed tail preserved internally) whenever more
// input is required.
func (s *ChunkedBodyState) Decode(input []byte) error {
	if s.Phase == ChunkedFinished {
		if len(input) == 0 {
			return nil
		}
		return newErr(AlreadyFinished, "Decode called after chunked body finished", input)
	}

	data := input
	if len(s.buffer) > 0 {
		data = append(s.buffer, input...)
		s.buffer = nil
	}
	offset := 0

	for {
		switch s.Phase {
		case ChunkedSize:
			ln, ok, err := ScanLine(data, offset, s.Limits.MaxLineBytes)
			if err != nil {
				return err
			}
			if !ok {
				s.buffer = append([]byte(nil), data[offset:]...)
				return nil
			}
			size, err := parseChunkSizeLine(ln.Bytes, s.Limits)
			if err != nil {
				return err
			}
			offset += ln.BytesConsumed
			if size == 0 {
				s.Phase = ChunkedTrailer
				s.trailerState = NewHeadersState(s.Limits)
				continue
			}
			s.currentChunkSize = size
			s.remainingChunk = size
			s.Phase = ChunkedData

		case ChunkedData:
			available := int64(len(data) - offset)
			if available == 0 {
				s.buffer = nil
				return nil
			}
			take := s.remainingChunk
			if take > available {
				take = available
			}
			if s.remainingChunk < s.currentChunkSize && len(s.chunks) > 0 {
				// Continuation of a chunk whose data was split across calls.
				last := len(s.chunks) - 1
				s.chunks[last] = append(s.chunks[last], data[offset:offset+int(take)]...)
			} else {
				chunk := make([]byte, take)
				copy(chunk, data[offset:offset+int(take)])
				s.chunks = append(s.chunks, chunk)
			}
			s.decoded += take
			s.remainingChunk -= take
			offset += int(take)
			if s.remainingChunk == 0 {
				s.Phase = ChunkedCRLF
			} else {
				return nil
			}

		case ChunkedCRLF:
			remaining := data[offset:]
			if len(remaining) < 2 {
				if len(remaining) == 1 && remaining[0] != '\r' {
					return newErr(MissingChunkCRLF, "expected CRLF after chunk data", remaining)
				}
				s.buffer = append([]byte(nil), remaining...)
				return nil
			}
			if remaining[0] != '\r' || remaining[1] != '\n' {
				return newErr(MissingChunkCRLF, "expected CRLF after chunk data", remaining[:2])
			}
			offset += 2
			s.Phase = ChunkedSize

		case ChunkedTrailer:
			if err := s.trailerState.DecodeHeaders(data[offset:], s.RejectObsFold); err != nil {
				return err
			}
			offset = len(data)
			if s.trailerState.Finished {
				s.trailers = s.trailerState.Builder()
				s.Phase = ChunkedFinished
				s.buffer = append([]byte(nil), s.trailerState.buffer...)
				return nil
			}
			return nil

		case ChunkedFinished:
			return nil
		}
	}
}

// Chunks returns the accumulated chunk-data in arrival order, one entry
// per wire chunk however many Decode calls its data arrived over.
func (s *ChunkedBodyState) Chunks() [][]byte { return s.chunks }

// DecodedBytes returns the number of decoded body bytes (excluding
// chunk-size lines, CRLFs, and trailers).
func (s *ChunkedBodyState) DecodedBytes() int64 { return s.decoded }

// Trailers returns the normalized trailer headers accumulated while
// decoding TRAILER, merging duplicate names by comma-joining their values.
func (s *ChunkedBodyState) Trailers() NormalizedHeaders {
	norm := s.trailers.Normalized()
	out := make(NormalizedHeaders, len(norm))
	for k, vals := range norm {
		out[k] = []string{joinComma(vals)}
	}
	return out
}

// Buffer returns bytes left over after the terminating trailer CRLF — the
// pipelining handoff channel for the next message.
func (s *ChunkedBodyState) Buffer() []byte { return s.buffer }

func joinComma(vals []string) string {
	if len(vals) == 1 {
		return vals[0]
	}
	out := vals[0]
	for _, v := range vals[1:] {
		out += ", " + v
	}
	return out
}

func parseChunkSizeLine(line []byte, limits Limits) (int64, error) {
	hexPart := line
	if semi := bytes.IndexByte(line, ';'); semi >= 0 {
		hexPart = line[:semi]
		ext := line[semi+1:]
		if len(ext) > limits.MaxChunkExtensionBytes {
			return 0, newErr(ChunkExtensionTooLarge, "chunk extension exceeds configured maximum", ext)
		}
	}
	if len(hexPart) == 0 {
		return 0, newErr(InvalidChunkSize, "empty chunk-size", line)
	}
	if len(hexPart) > limits.MaxChunkSizeHexDigits {
		return 0, newErr(ChunkSizeTooLarge, "chunk-size hex digit count exceeds configured maximum", hexPart)
	}

	var n int64
	for _, c := range hexPart {
		var v int64
		switch {
		case c >= '0' && c <= '9':
			v = int64(c - '0')
		case c >= 'a' && c <= 'f':
			v = int64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = int64(c-'A') + 10
		default:
			return 0, newErr(InvalidChunkSize, "chunk-size is not hexadecimal", hexPart)
		}
		n = n<<4 | v
	}
	if n > limits.MaxChunkSize {
		return 0, newErr(ChunkSizeTooLarge, "chunk-size exceeds configured maximum", hexPart)
	}
	return n, nil
}
