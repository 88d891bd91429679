package validate

import "strconv"

// ContentRangeResult is the outcome of validating a response Content-Range
// header value.
type ContentRangeResult struct {
	Valid       bool
	Reason      string
	Unsatisfied bool // "bytes */<size>" form
	Start       int64
	End         int64
	Size        int64
}

func invalidContentRange(reason string) ContentRangeResult {
	return ContentRangeResult{Valid: false, Reason: reason}
}

// ContentRange validates "bytes <start>-<end>/<size>" or "bytes */<size>"
// per spec §4.8.
func ContentRange(value string) ContentRangeResult {
	if containsCRLFOrNUL(value) {
		return invalidContentRange("contains CR, LF, or NUL")
	}
	const prefix = "bytes "
	if len(value) <= len(prefix) || toLower(value[:len(prefix)]) != prefix {
		return invalidContentRange("missing 'bytes' unit")
	}
	rest := value[len(prefix):]

	slash := indexByte(rest, '/')
	if slash < 0 {
		return invalidContentRange("missing '/'")
	}
	rangePart := rest[:slash]
	sizePart := rest[slash+1:]

	size, err := strconv.ParseInt(sizePart, 10, 64)
	if err != nil || size < 0 || !isSafeInteger(size) {
		return invalidContentRange("invalid size")
	}

	if rangePart == "*" {
		return ContentRangeResult{Valid: true, Unsatisfied: true, Size: size}
	}

	dash := indexByte(rangePart, '-')
	if dash < 0 {
		return invalidContentRange("missing '-' in range")
	}
	start, err := strconv.ParseInt(rangePart[:dash], 10, 64)
	if err != nil || start < 0 || !isSafeInteger(start) {
		return invalidContentRange("invalid start")
	}
	end, err := strconv.ParseInt(rangePart[dash+1:], 10, 64)
	if err != nil || end < 0 || !isSafeInteger(end) {
		return invalidContentRange("invalid end")
	}
	if !(start <= end && end < size) {
		return invalidContentRange("range out of bounds")
	}
	return ContentRangeResult{Valid: true, Start: start, End: end, Size: size}
}

// isSafeInteger mirrors JavaScript's Number.isSafeInteger bound, which the
// originating spec expresses its integer limits in terms of.
func isSafeInteger(n int64) bool {
	const maxSafeInteger = 1<<53 - 1
	return n <= maxSafeInteger
}
