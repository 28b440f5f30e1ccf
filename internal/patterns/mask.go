package patterns

import (
	"regexp"

	"github.com/google/uuid"
)

// MaskedBlock is one span replaced by a placeholder during cascade
// masking (spec §4.D step 4). The placeholder is never un-masked
// downstream — it remains an opaque token, per spec's note that unmask is
// unused by the analysis itself.
type MaskedBlock struct {
	Placeholder string
	Original    string
}

// Mask replaces every match of re in text with a unique placeholder,
// returning the masked text and the list of replaced blocks in match
// order. Each placeholder embeds a fresh UUID so that two identical
// matches (e.g. two empty code fences) still get distinct, non-colliding
// tokens.
func Mask(re *regexp.Regexp, text, prefix string) (string, []MaskedBlock) {
	var blocks []MaskedBlock
	masked := re.ReplaceAllStringFunc(text, func(match string) string {
		placeholder := prefix + uuid.NewString()
		blocks = append(blocks, MaskedBlock{Placeholder: placeholder, Original: match})
		return placeholder
	})
	return masked, blocks
}

// Placeholder prefixes for the cascade masking order of spec §4.D step 4:
// multiline code, inline code, advanced commands, any-links.
const (
	PlaceholderMultilineCode = "\x00MCODE:"
	PlaceholderInlineCode    = "\x00ICODE:"
	PlaceholderAdvCmd        = "\x00ADVCMD:"
	PlaceholderAnyLink       = "\x00ANYLINK:"
)
