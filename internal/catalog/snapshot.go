package catalog

import (
	"time"

	"llmboard/pkg/types"
)

// snapshot is never mutated after it is published.
type snapshot struct {
	models   []types.Model
	byID     map[string]int
	gen      uint64
	loadedAt time.Time
	source   string
}

func newSnapshot(models []types.Model, gen uint64, source string, now time.Time) *snapshot {
	s := &snapshot{
		models:   models,
		byID:     make(map[string]int, len(models)),
		gen:      gen,
		loadedAt: now,
		source:   source,
	}
	for i, m := range models {
		s.byID[m.ID] = i
	}
	return s
}

func (s *snapshot) find(id string) (types.Model, bool) {
	i, ok := s.byID[id]
	if !ok {
		return types.Model{}, false
	}
	return s.models[i], true
}

// counts returns how many records carry each rank.
func (s *snapshot) counts() (operational, safety int) {
	for _, m := range s.models {
		if m.OperationalRank != nil {
			operational++
		}
		if m.SafetyRank != nil {
			safety++
		}
	}
	return operational, safety
}
