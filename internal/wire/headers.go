package wire

import "strings"

// RawHeaderPair is one (name, value) entry in original casing, in the
// order it was added.
type RawHeaderPair struct {
	Name  string
	Value string
}

// NormalizedHeaders is a lowercase-keyed multimap: every key is lowercase
// and nonempty, and maps to an ordered, non-empty list of trimmed values.
type NormalizedHeaders map[string][]string

// Get returns the first normalized value for name, or "" if absent.
func (h NormalizedHeaders) Get(name string) string {
	vals := h[strings.ToLower(name)]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// Joined returns all values for name joined with ", ", the representation
// RFC 7230 treats as equivalent to repeated header fields.
func (h NormalizedHeaders) Joined(name string) string {
	return strings.Join(h[strings.ToLower(name)], ", ")
}

// HeaderBuilder maintains the dual raw/normalized view of a header block
// and keeps both consistent under every mutation (spec §3, §4.7.1).
type HeaderBuilder struct {
	raw  []RawHeaderPair
	norm NormalizedHeaders
}

// NewHeaderBuilder returns an empty builder.
func NewHeaderBuilder() *HeaderBuilder {
	return &HeaderBuilder{norm: make(NormalizedHeaders)}
}

// Add appends one (name, value) pair to the raw view and merges its
// trimmed, non-empty form into the normalized view.
func (b *HeaderBuilder) Add(name, value string) {
	b.raw = append(b.raw, RawHeaderPair{Name: name, Value: value})
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return
	}
	b.norm[key] = append(b.norm[key], trimmed)
}

// AddValues flattens an array-valued header input into one raw pair per
// value, preserving the array's order.
func (b *HeaderBuilder) AddValues(name string, values []string) {
	for _, v := range values {
		b.Add(name, v)
	}
}

// Set replaces every existing value for name (case-insensitively) with a
// single value, updating both views atomically.
func (b *HeaderBuilder) Set(name, value string) {
	b.Delete(name)
	b.Add(name, value)
}

// Delete removes every raw pair and normalized entry for name
// (case-insensitive).
func (b *HeaderBuilder) Delete(name string) {
	key := strings.ToLower(name)
	delete(b.norm, key)
	kept := b.raw[:0]
	for _, p := range b.raw {
		if strings.ToLower(p.Name) != key {
			kept = append(kept, p)
		}
	}
	b.raw = kept
}

// Raw returns the insertion-ordered (name, value) pairs, one RawHeaderPair
// per header line. The returned slice is owned by the caller.
func (b *HeaderBuilder) Raw() []RawHeaderPair {
	out := make([]RawHeaderPair, len(b.raw))
	copy(out, b.raw)
	return out
}

// Normalized returns the lowercase-keyed multimap view. The returned map
// is owned by the caller.
func (b *HeaderBuilder) Normalized() NormalizedHeaders {
	out := make(NormalizedHeaders, len(b.norm))
	for k, v := range b.norm {
		vc := make([]string, len(v))
		copy(vc, v)
		out[k] = vc
	}
	return out
}

// HeadersState is the §4.4 headers accumulator: it consumes CRLF-terminated
// lines until the terminating empty line, enforcing per-line and aggregate
// size limits along the way.
type HeadersState struct {
	Limits     Limits
	buffer     []byte
	builder    *HeaderBuilder
	blockBytes int
	count      int
	Finished   bool
	// pendingFold holds the most recently appended raw index eligible for
	// obs-fold continuation, or -1 if folding cannot continue.
	pendingFold int
}

// NewHeadersState creates a fresh headers accumulator.
func NewHeadersState(limits Limits) *HeadersState {
	return &HeadersState{Limits: limits, builder: NewHeaderBuilder(), pendingFold: -1}
}

// Builder exposes the underlying header builder for inspection after
// (or during, between steps) parsing.
func (s *HeadersState) Builder() *HeaderBuilder { return s.builder }

// DecodeHeaders consumes as much of input as forms complete header lines,
// returning the unconsumed tail via s.buffer. When the terminating empty
// line is seen, s.Finished becomes true and s.buffer holds whatever
// followed it (body bytes for the caller to consume next).
//
// RejectObsFold controls §4.3's open question: when true, a folded
// continuation line raises INVALID_HEADER_FOLDING; when false (the
// default zero value), folding is accepted and the continuation's trimmed
// content is appended to the previous value separated by a single space.
func (s *HeadersState) DecodeHeaders(input []byte, rejectObsFold bool) error {
	if s.Finished {
		return newErr(AlreadyFinished, "DecodeHeaders called after headers were finished", input)
	}

	var data []byte
	if len(s.buffer) == 0 {
		data = input
	} else {
		data = append(s.buffer, input...)
		s.buffer = nil
	}

	offset := 0
	for {
		ln, ok, err := ScanLine(data, offset, s.Limits.MaxLineBytes)
		if err != nil {
			return err
		}
		if !ok {
			s.buffer = append([]byte(nil), data[offset:]...)
			return nil
		}

		if len(ln.Bytes) == 0 {
			s.Finished = true
			s.buffer = append([]byte(nil), data[offset+ln.BytesConsumed:]...)
			return nil
		}

		if IsObsFoldContinuation(ln.Bytes) {
			if rejectObsFold {
				return newErr(InvalidHeaderFolding, "obsolete line folding is rejected", ln.Bytes)
			}
			if s.pendingFold < 0 {
				return newErr(InvalidHeaderFolding, "continuation line with no preceding header", ln.Bytes)
			}
			cont := strings.TrimLeft(string(ln.Bytes), " \t")
			last := s.builder.raw[s.pendingFold]
			last.Value = last.Value + " " + cont
			s.builder.raw[s.pendingFold] = last
			key := strings.ToLower(strings.TrimSpace(last.Name))
			trimmed := strings.TrimSpace(last.Value)
			if vals := s.builder.norm[key]; len(vals) > 0 {
				vals[len(vals)-1] = trimmed
			} else if trimmed != "" {
				s.builder.norm[key] = []string{trimmed}
			}
			s.blockBytes += ln.BytesConsumed
			if s.blockBytes > s.Limits.MaxHeaderBlockBytes {
				return newErr(HeaderBlockTooLarge, "header block exceeds configured maximum", ln.Bytes)
			}
			offset += ln.BytesConsumed
			continue
		}

		hl, err := ParseHeaderLine(ln.Bytes, s.Limits.MaxHeaderNameBytes, s.Limits.MaxHeaderValueBytes)
		if err != nil {
			return err
		}

		s.count++
		if s.count > s.Limits.MaxHeaderCount {
			return newErr(TooManyHeaders, "header count exceeds configured maximum", ln.Bytes)
		}
		s.blockBytes += ln.BytesConsumed
		if s.blockBytes > s.Limits.MaxHeaderBlockBytes {
			return newErr(HeaderBlockTooLarge, "header block exceeds configured maximum", ln.Bytes)
		}

		s.builder.Add(hl.Name, hl.Value)
		s.pendingFold = len(s.builder.raw) - 1

		offset += ln.BytesConsumed
	}
}
