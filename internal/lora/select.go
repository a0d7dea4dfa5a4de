package lora

import (
	"sort"
	"strings"
)

// Pick is one selected entry together with the weight to apply, which is
// the catalog weight unless a fallback override supplied it.
type Pick struct {
	Entry  *Entry
	Weight float64
}

// Pick scores every compatible catalog entry against the tags and visual
// description, then greedily accepts the best-scoring entries subject to
// per-category quotas and the global cap. When nothing scores at all, the
// ordered fallback list fills the selection under the same constraints.
// The walk is deterministic: identical inputs over an unchanged catalog
// always yield the same ordered result.
func (c *Catalog) Pick(tags []string, visual string, sdxl bool) []Pick {
	corpus := buildCorpus(tags, visual)

	type candidate struct {
		entry *Entry
		score int
	}
	candidates := make([]candidate, 0, len(c.Entries))
	for i := range c.Entries {
		e := &c.Entries[i]
		if sdxl && !e.SDXLOk {
			continue
		}
		candidates = append(candidates, candidate{entry: e, score: scoreEntry(corpus, e)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].entry.Weight > candidates[j].entry.Weight
	})

	picked := make([]Pick, 0, c.MaxTotal)
	usedPerCat := make(map[Category]int)

	for _, cand := range candidates {
		if len(picked) >= c.MaxTotal {
			break
		}
		if cand.score == 0 {
			continue
		}
		if usedPerCat[cand.entry.Category] >= c.limit(cand.entry.Category) {
			continue
		}
		picked = append(picked, Pick{Entry: cand.entry, Weight: cand.entry.Weight})
		usedPerCat[cand.entry.Category]++
	}

	if len(picked) > 0 {
		return picked
	}

	// No keyword matched anywhere: fall back to the default priority
	// list, still honoring quotas and the cap.
	for _, f := range c.Fallbacks {
		if len(picked) >= c.MaxTotal {
			break
		}
		e := c.find(f.Name)
		if e == nil {
			continue
		}
		if usedPerCat[e.Category] >= c.limit(e.Category) {
			continue
		}
		picked = append(picked, Pick{Entry: e, Weight: f.Weight})
		usedPerCat[e.Category]++
	}

	return picked
}

// buildCorpus lowers the tags and visual text into one searchable string,
// flattening the separators keyword phrases never contain.
func buildCorpus(tags []string, visual string) string {
	parts := make([]string, 0, len(tags)+1)
	parts = append(parts, tags...)
	if visual != "" {
		parts = append(parts, visual)
	}
	corpus := strings.ToLower(strings.Join(parts, " "))
	return strings.NewReplacer("-", " ", "_", " ", "/", " ").Replace(corpus)
}

// scoreEntry counts how many of the entry's keywords occur as substrings
// of the corpus.
func scoreEntry(corpus string, e *Entry) int {
	score := 0
	for _, k := range e.Keywords {
		if k != "" && strings.Contains(corpus, strings.ToLower(k)) {
			score++
		}
	}
	return score
}
