package feed

import (
	"sync"

	"github.com/bilgisen/newspulse/internal/models"
)

// Snapshot is a copy of everything currently on screen.
type Snapshot struct {
	Feed    models.FeedResult    `json:"feed"`
	Markets models.MarketResult  `json:"markets"`
	Weather models.WeatherResult `json:"weather"`
	Search  models.SearchResult  `json:"search"`
}

// View holds the latest applied result of each operation class. The
// orchestrator is its only writer.
type View struct {
	mu        sync.RWMutex
	sequencer *Sequencer
	snap      Snapshot
}

func NewView(sequencer *Sequencer) *View {
	return &View{
		sequencer: sequencer,
		snap: Snapshot{
			Feed: models.FeedResult{
				Category: models.CategoryForYou,
				Articles: []models.NewsArticle{},
				Sources:  []models.Citation{},
				Status:   models.StateIdle,
			},
			Markets: models.MarketResult{Markets: []models.MarketData{}, Status: models.StateIdle},
			Weather: models.WeatherResult{Status: models.StateIdle},
			Search:  idleSearch(""),
		},
	}
}

// Snapshot returns a copy of the current state. Slices are shared with the
// stored results, which are never mutated after being applied.
func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap
}

// apply runs update only if t is still the latest ticket of its class.
func (v *View) apply(t Ticket, update func(*Snapshot)) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.sequencer.IsLatest(t) {
		return false
	}
	update(&v.snap)
	return true
}

func idleSearch(query string) models.SearchResult {
	return models.SearchResult{
		Query:   query,
		Sources: []models.Citation{},
		Status:  models.StateIdle,
	}
}
