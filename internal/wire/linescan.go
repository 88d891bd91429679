package wire

// Line is the result of a successful ScanLine call: the CRLF-stripped
// slice and how many bytes of the input it consumed (including the CRLF).
type Line struct {
	Bytes         []byte
	BytesConsumed int
}

// ScanLine scans buffer starting at offset for the first CRLF (0x0D 0x0A).
// It returns (line, true, nil) on success, (zero, false, nil) when more
// input is needed, or (zero, false, err) on a protocol violation.
//
// A bare LF (not preceded by CR) or a bare CR (not immediately followed by
// LF, other than a lone trailing CR at end-of-buffer) is INVALID_LINE_ENDING.
// A scan that runs past maxLineBytes without terminating is LINE_TOO_LARGE.
func ScanLine(buffer []byte, offset int, maxLineBytes int) (Line, bool, error) {
	if maxLineBytes <= 0 {
		return Line{}, false, argErr("maxLineBytes must be a positive integer")
	}
	if offset < 0 || offset > len(buffer) || (offset == len(buffer) && len(buffer) != 0) {
		return Line{}, false, argErr("offset out of range")
	}

	for i := offset; i < len(buffer); i++ {
		b := buffer[i]
		switch b {
		case '\n':
			// Bare LF: not preceded by CR (or at the very start of the scan).
			if i == offset || buffer[i-1] != '\r' {
				return Line{}, false, newErr(InvalidLineEnding, "bare LF without preceding CR", buffer[offset:min(i+1, len(buffer))])
			}
			crPos := i - 1
			return Line{
				Bytes:         buffer[offset:crPos],
				BytesConsumed: (crPos - offset) + 2,
			}, true, nil
		case '\r':
			if i+1 < len(buffer) {
				if buffer[i+1] == '\n' {
					return Line{
						Bytes:         buffer[offset:i],
						BytesConsumed: (i - offset) + 2,
					}, true, nil
				}
				return Line{}, false, newErr(InvalidLineEnding, "bare CR not followed by LF", buffer[offset:min(i+2, len(buffer))])
			}
			// Lone trailing CR at end-of-buffer: need more data, not an error.
		}
		if i-offset+1 > maxLineBytes {
			return Line{}, false, newErr(LineTooLarge, "line exceeds configured maximum", buffer[offset:min(offset+maxLineBytes+1, len(buffer))])
		}
	}

	return Line{}, false, nil
}
