// Package bullets implements the bullet segmenter of spec §4.C, grounded
// on logseq_analyzer/logseq_file/bullets.py's LogseqBullets.process: split
// file text at every bullet marker, isolate the page-properties prolog
// (the primary bullet), and carry bullet-density statistics.
package bullets

import (
	"strings"

	"github.com/logseq-analyzer/lga/internal/patterns"
	"github.com/logseq-analyzer/lga/internal/types"
)

// Segments is the result of splitting one file's text on bullet markers.
type Segments struct {
	Primary string   // text preceding the first bullet marker
	Rest    []string // every bullet's body text, in order
	Info    types.BulletInfo
}

// Segment splits text per spec §4.C.
func Segment(text string) Segments {
	locs := patterns.Bullet.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return Segments{
			Primary: text,
			Info:    info(text, nil),
		}
	}

	primary := text[:locs[0][0]]
	var bodies []string
	for i, loc := range locs {
		start := loc[1]
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		bodies = append(bodies, strings.TrimRight(text[start:end], "\n"))
	}

	return Segments{
		Primary: strings.TrimSpace(primary),
		Rest:    bodies,
		Info:    info(text, bodies),
	}
}

// info computes BulletInfo per spec §8 scenario 1: chars, bullets,
// empty_bullets, char_per_bullet (nil when there are no bullets).
func info(text string, bodies []string) types.BulletInfo {
	empty := 0
	for _, b := range bodies {
		if strings.TrimSpace(b) == "" {
			empty++
		}
	}
	bi := types.BulletInfo{
		Chars:        len(text),
		Bullets:      len(bodies),
		EmptyBullets: empty,
	}
	if len(bodies) > 0 {
		v := float64(len(text)) / float64(len(bodies))
		bi.CharPerBullet = &v
	}
	return bi
}
