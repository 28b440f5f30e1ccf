package extract

import "strings"

// SplitAliasValue implements spec §4.D step 3's bracket-aware comma split:
// "[[X,Y]],Z" yields ["X,Y", "Z"] — double brackets suppress the comma
// delimiter inside them. Grounded on
// logseq_analyzer/utils/helpers.py's process_aliases manual
// bracket-depth-aware splitter.
func SplitAliasValue(value string) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	runes := []rune(value)
	for i := 0; i < len(runes); i++ {
		switch {
		case i+1 < len(runes) && runes[i] == '[' && runes[i+1] == '[':
			depth++
			cur.WriteRune(runes[i])
			cur.WriteRune(runes[i+1])
			i++
		case i+1 < len(runes) && runes[i] == ']' && runes[i+1] == ']':
			if depth > 0 {
				depth--
			}
			cur.WriteRune(runes[i])
			cur.WriteRune(runes[i+1])
			i++
		case runes[i] == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(runes[i])
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, strings.TrimSpace(cur.String()))
	}

	for i, p := range parts {
		p = strings.TrimPrefix(p, "[[")
		p = strings.TrimSuffix(p, "]]")
		parts[i] = p
	}
	return parts
}
