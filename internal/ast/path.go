package ast

import "strings"

// Path is an ordered, non-empty sequence of segments (§3.1). The first
// segment is always a plain identifier; later segments may have been
// written as a quoted identifier string, with the surrounding quotes
// already stripped by the parser.
type Path []string

// String renders the path using dotted notation, quoting any segment that
// is not itself a valid bare identifier.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		if i > 0 && !isBareIdentifier(seg) {
			parts[i] = `"` + strings.ReplaceAll(seg, `"`, `\"`) + `"`
		} else {
			parts[i] = seg
		}
	}
	return strings.Join(parts, ".")
}

func isBareIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
