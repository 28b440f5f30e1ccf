// Package extract implements the content extractor of spec §4.D: the
// three-phase algorithm that turns one file's raw text into a feature map,
// grounded on logseq_analyzer/logseq_file/file.py's process/
// process_content_data and bullets.py's extract_properties /
// extract_aliases_and_propvalues / extract_patterns.
package extract

import (
	"strings"

	"github.com/logseq-analyzer/lga/internal/bullets"
	"github.com/logseq-analyzer/lga/internal/patterns"
	"github.com/logseq-analyzer/lga/internal/types"
)

// Extract runs the three-phase algorithm over text and returns the
// resulting feature map. It does not mutate File itself — the graph
// analyzer sets File.HasBacklinks from the result via HasBacklinksFired.
func Extract(text string) types.FeatureMap {
	features := types.FeatureMap{}

	// Phase 1: quick extractions on raw text.
	for _, a := range patterns.Asset.FindAllString(text, -1) {
		features.Add(types.CategoryAssets, a)
	}
	for _, u := range patterns.AnyURL.FindAllString(text, -1) {
		features.Add(types.CategoryAnyLinks, u)
	}
	for _, c := range patterns.ExtractInlineCode(text) {
		features.Add(types.CategoryInlineCode, c)
	}

	// Phase 2: property extraction via the bullet segmenter.
	seg := bullets.Segment(text)
	var pageProps, blockBody string
	if seg.Primary != "" && !strings.HasPrefix(seg.Primary, "#") {
		pageProps = seg.Primary
		blockBody = strings.Join(seg.Rest, "\n")
	} else {
		blockBody = seg.Primary + "\n" + strings.Join(seg.Rest, "\n")
	}

	classifyProperties(pageProps, features, types.CategoryPropertiesPageBuiltin, types.CategoryPropertiesPageUser)
	classifyProperties(blockBody, features, types.CategoryPropertiesBlockBuiltin, types.CategoryPropertiesBlockUser)

	// Phase 3: aliases and property values, scanning the whole text so
	// an alias declared in either region is captured.
	for _, m := range patterns.PropertyLine.FindAllStringSubmatch(text, -1) {
		key, value := strings.ToLower(m[1]), m[2]
		if value == "" {
			continue
		}
		features.Add(types.CategoryPropertiesValues, value)
		if key == "alias" || key == "aliases" {
			for _, a := range SplitAliasValue(value) {
				if a != "" {
					features.Add(types.CategoryAliases, a)
				}
			}
		}
	}

	// Phase 4: cascade masking, in the fixed order of spec §4.D step 4:
	// multiline code, inline code, advanced commands, any-links. Code and
	// AdvCmd are classified from the spans Mask captured *before*
	// masking (their own text), since by the time the text is masked
	// those spans are gone — running Code.Process/AdvCmd.Process against
	// the masked text would only ever see the placeholder tokens.
	masked := text
	var codeBlocks, advCmdBlocks []patterns.MaskedBlock
	masked, codeBlocks = patterns.Mask(patterns.Code.All, masked, patterns.PlaceholderMultilineCode)
	masked, _ = patterns.Mask(patterns.InlineCode, masked, patterns.PlaceholderInlineCode)
	masked, advCmdBlocks = patterns.Mask(patterns.AdvCmd.All, masked, patterns.PlaceholderAdvCmd)

	mergeInto(features, patterns.Code.ClassifyBlocks(codeBlocks))
	mergeInto(features, patterns.AdvCmd.ClassifyBlocks(advCmdBlocks))
	mergeInto(features, patterns.DoubleCurly.Process(masked))
	mergeInto(features, patterns.DoubleParen.Process(masked))
	mergeInto(features, patterns.ExternalLink.Process(masked))
	mergeInto(features, patterns.EmbeddedLink.Process(masked))

	for _, p := range patterns.ExtractPageReferences(masked) {
		features.Add(types.CategoryPageReferences, strings.ToLower(p))
	}
	for _, t := range patterns.ExtractTaggedBacklinks(masked) {
		features.Add(types.CategoryTaggedBacklinks, strings.ToLower(t))
	}
	for _, t := range patterns.ExtractTags(masked) {
		features.Add(types.CategoryTags, strings.ToLower(t))
	}
	for _, d := range patterns.Draw.FindAllString(masked, -1) {
		features.Add(types.CategoryDraws, d)
	}
	for _, b := range patterns.Blockquote.FindAllString(masked, -1) {
		features.Add(types.CategoryBlockquotes, b)
	}
	for _, c := range patterns.Flashcard.FindAllString(masked, -1) {
		features.Add(types.CategoryFlashcards, c)
	}
	for _, v := range patterns.DynamicVariable.FindAllString(masked, -1) {
		features.Add(types.CategoryDynamicVariables, v)
	}

	// Final masking step: whatever link-shaped token remains is opaque
	// from here on (spec §4.D step 4, "any-links"); placeholders are
	// never un-masked.
	masked, _ = patterns.Mask(patterns.AnyLink, masked, patterns.PlaceholderAnyLink)

	return features
}

func mergeInto(dst, src types.FeatureMap) {
	for cat, vals := range src {
		dst[cat] = append(dst[cat], vals...)
	}
}

// classifyProperties scans region for "key:: value" lines and files each
// key under the builtin or user category depending on BuiltInProperties
// membership, per spec §4.D step 2.
func classifyProperties(region string, features types.FeatureMap, builtin, user types.Category) {
	if region == "" {
		return
	}
	for _, m := range patterns.PropertyLine.FindAllStringSubmatch(region, -1) {
		key := strings.ToLower(m[1])
		if IsBuiltIn(key) {
			features.Add(builtin, key)
		} else {
			features.Add(user, key)
		}
	}
}

// HasBacklinksFired reports whether any of the categories that set
// File.HasBacklinks (spec §4.D) fired in features.
func HasBacklinksFired(features types.FeatureMap) bool {
	for _, cat := range types.BacklinkCategories {
		if len(features[cat]) > 0 {
			return true
		}
	}
	return false
}
