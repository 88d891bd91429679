package validate

import "strconv"

// CacheControlDirective is one parsed directive: bare (IsBare true),
// integer-valued (IsInteger true, IntValue set), or quoted-string-valued
// (StrValue set).
type CacheControlDirective struct {
	Name      string
	IsBare    bool
	IsInteger bool
	IntValue  int64
	StrValue  string
}

// CacheControlResult is the outcome of validating a Cache-Control header.
type CacheControlResult struct {
	Valid      bool
	Reason     string
	Directives []CacheControlDirective
}

func invalidCacheControl(reason string) CacheControlResult {
	return CacheControlResult{Valid: false, Reason: reason}
}

// CacheControl validates a comma-separated directive list per spec §4.8.
func CacheControl(value string) CacheControlResult {
	if containsCRLFOrNUL(value) {
		return invalidCacheControl("contains CR, LF, or NUL")
	}

	var directives []CacheControlDirective
	seen := map[string]bool{}
	for _, part := range splitByte(value, ',') {
		part = trimOWS(part)
		if part == "" {
			continue
		}
		eq := indexByte(part, '=')
		if eq < 0 {
			name := toLower(part)
			if !isToken(name) {
				return invalidCacheControl("invalid directive name: " + part)
			}
			if seen[name] {
				return invalidCacheControl("duplicate directive: " + name)
			}
			seen[name] = true
			directives = append(directives, CacheControlDirective{Name: name, IsBare: true})
			continue
		}

		name := toLower(trimOWS(part[:eq]))
		if !isToken(name) {
			return invalidCacheControl("invalid directive name")
		}
		if seen[name] {
			return invalidCacheControl("duplicate directive: " + name)
		}
		seen[name] = true
		raw := part[eq+1:]

		if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
			directives = append(directives, CacheControlDirective{Name: name, StrValue: raw[1 : len(raw)-1]})
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return invalidCacheControl("invalid directive value: " + raw)
		}
		directives = append(directives, CacheControlDirective{Name: name, IsInteger: true, IntValue: n})
	}
	if len(directives) == 0 {
		return invalidCacheControl("empty")
	}
	return CacheControlResult{Valid: true, Directives: directives}
}
