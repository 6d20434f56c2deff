package form

import "strings"

// ParsePath splits a server-side field name into its path segments.
// Names use dotted notation for nested objects and bracketed indexes for
// collections, so "bankAccount.agency" becomes ["bankAccount", "agency"]
// and "skills[0].name" becomes ["skills", "0", "name"].
func ParsePath(name string) []string {
	if name == "" {
		return nil
	}

	var segments []string
	for _, part := range strings.Split(name, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				break
			}
			close := strings.IndexByte(part[open:], ']')
			if close < 0 {
				break
			}
			if open > 0 {
				segments = append(segments, part[:open])
			}
			segments = append(segments, part[open+1:open+close])
			part = part[open+close+1:]
		}
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// JoinPath is the inverse of ParsePath for display purposes. Numeric
// segments are rendered back as bracketed indexes.
func JoinPath(path []string) string {
	var b strings.Builder
	for i, seg := range path {
		if isIndex(seg) {
			b.WriteByte('[')
			b.WriteString(seg)
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func isIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
