package archive

import (
	"encoding/json"
	"sort"
)

// PathCount is how often a career path was chosen
type PathCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Stats summarizes the archive
type Stats struct {
	Total        int         `json:"total"`
	PopularPaths []PathCount `json:"popular_paths"`
}

const popularPathLimit = 3

// Stats counts archived entries and the most chosen career paths. Entries
// that are not objects or carry no selection still count toward Total.
func (a *Archive) Stats() (Stats, error) {
	entries, err := a.Load()
	if err != nil {
		return Stats{}, err
	}
	return summarize(entries), nil
}

func summarize(entries []json.RawMessage) Stats {
	counts := map[string]int{}
	for _, raw := range entries {
		var entry struct {
			UseCase struct {
				Selected string `json:"selected"`
			} `json:"use_case"`
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		if sel := entry.UseCase.Selected; sel != "" {
			counts[sel]++
		}
	}

	popular := make([]PathCount, 0, len(counts))
	for path, n := range counts {
		popular = append(popular, PathCount{Path: path, Count: n})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].Path < popular[j].Path
	})
	if len(popular) > popularPathLimit {
		popular = popular[:popularPathLimit]
	}

	return Stats{Total: len(entries), PopularPaths: popular}
}
