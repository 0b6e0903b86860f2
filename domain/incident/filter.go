package incident

import (
	"strings"

	lo "github.com/samber/lo"
)

// invisibleWS folds non-breaking and zero-width whitespace variants that
// show up in workflow text pasted from SAP screens.
var invisibleWS = strings.NewReplacer(
	"\u00A0", " ",
	"\u200B", " ",
	"\u200C", " ",
	"\u200D", " ",
	"\uFEFF", " ",
)

// PhraseFilter drops records whose work-item text contains Phrase,
// case-insensitively and tolerant of invisible whitespace. Rows are
// processed in ChunkSize batches purely to bound memory on very large
// exports; the surviving set is identical to a single pass.
type PhraseFilter struct {
	Phrase    string
	ChunkSize int
}

// Apply filters rows and reports how many were removed.
func (f PhraseFilter) Apply(rows []Record) ([]Record, int) {
	phrase := strings.ToLower(f.Phrase)
	size := f.ChunkSize
	if size <= 0 {
		size = len(rows)
	}
	kept := make([]Record, 0, len(rows))
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		for _, r := range rows[start:end] {
			if !containsPhrase(r.WorkItemText, phrase) {
				kept = append(kept, r)
			}
		}
	}
	return kept, len(rows) - len(kept)
}

func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	t := invisibleWS.Replace(text)
	t = multiSpace.ReplaceAllString(t, " ")
	t = strings.ToLower(strings.TrimSpace(t))
	return strings.Contains(t, phrase)
}

// AgentFilter keeps only records whose last-touching agent is on the
// allow-list.
type AgentFilter struct {
	Allowed []string
}

// Apply returns the kept rows, the removed count, and a per-kept-agent
// breakdown.
func (f AgentFilter) Apply(rows []Enriched) ([]Enriched, int, map[string]int) {
	allowed := lo.SliceToMap(f.Allowed, func(a string) (string, struct{}) {
		return a, struct{}{}
	})
	kept := lo.Filter(rows, func(r Enriched, _ int) bool {
		_, ok := allowed[r.LastAgent]
		return ok
	})
	perAgent := lo.CountValuesBy(kept, func(r Enriched) string { return r.LastAgent })
	return kept, len(rows) - len(kept), perAgent
}
