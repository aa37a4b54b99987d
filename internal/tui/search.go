package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/KirkDiggler/quest-dash/internal/entities"
)

// questSource implements fuzzy.Source over quest titles and descriptions
type questSource []*entities.Quest

func (q questSource) Len() int {
	return len(q)
}

func (q questSource) String(i int) string {
	return q[i].Title + " " + q[i].Description
}

// filterQuests returns quests matching query, best match first.
// An empty query keeps the original order.
func filterQuests(query string, quests []*entities.Quest) []*entities.Quest {
	query = strings.TrimSpace(query)
	if query == "" {
		return quests
	}

	matches := fuzzy.FindFrom(query, questSource(quests))
	out := make([]*entities.Quest, 0, len(matches))
	for _, m := range matches {
		out = append(out, quests[m.Index])
	}
	return out
}
