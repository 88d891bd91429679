package validate

import "strconv"

// RangeResult is the outcome of resolving a request Range header against
// a known content length.
type RangeResult struct {
	Valid      bool
	Reason     string
	StatusCode int // 0 when Valid, else 400 (malformed) or 416 (unsatisfiable)
	First      int64
	Last       int64
}

func malformedRange(reason string) RangeResult {
	return RangeResult{Valid: false, Reason: reason, StatusCode: 400}
}

func unsatisfiableRange(reason string) RangeResult {
	return RangeResult{Valid: false, Reason: reason, StatusCode: 416}
}

// Range validates and resolves "bytes=<range-spec>" against contentLength
// per spec §4.8 / RFC 7233. Only a single range is supported; leading and
// trailing whitespace is tolerated and the "bytes" keyword is matched
// case-insensitively.
func Range(value string, contentLength int64) RangeResult {
	if containsCRLFOrNUL(value) {
		return malformedRange("contains CR, LF, or NUL")
	}
	value = trimOWS(value)
	eq := indexByte(value, '=')
	if eq < 0 {
		return malformedRange("missing '='")
	}
	unit := toLower(trimOWS(value[:eq]))
	if unit != "bytes" {
		return malformedRange("unsupported range unit")
	}
	spec := trimOWS(value[eq+1:])
	if spec == "" {
		return malformedRange("empty range-spec")
	}

	dash := indexByte(spec, '-')
	if dash < 0 {
		return malformedRange("missing '-'")
	}

	if dash == 0 {
		suffixStr := spec[1:]
		suffix, err := strconv.ParseInt(suffixStr, 10, 64)
		if err != nil || suffix < 0 {
			return malformedRange("invalid suffix length")
		}
		if suffix == 0 || suffix > contentLength {
			return unsatisfiableRange("suffix length unsatisfiable")
		}
		return RangeResult{Valid: true, First: contentLength - suffix, Last: contentLength - 1}
	}

	startStr := spec[:dash]
	endStr := spec[dash+1:]
	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return malformedRange("invalid start")
	}
	if start >= contentLength {
		return unsatisfiableRange("start beyond content length")
	}
	if endStr == "" {
		return RangeResult{Valid: true, First: start, Last: contentLength - 1}
	}
	end, err := strconv.ParseInt(endStr, 10, 64)
	if err != nil || end < start {
		return malformedRange("invalid end")
	}
	if end >= contentLength {
		end = contentLength - 1
	}
	return RangeResult{Valid: true, First: start, Last: end}
}
