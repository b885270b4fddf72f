package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Selector     string
	Goroutines   int
	Candidates   int
	Duration     time.Duration
	Episodes     int
	Wins         int
	FullPlayouts int
	Cutoffs      int
}

// EpisodesPerSecond is the rollout throughput of a search.
func (m SearchMetric) EpisodesPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Episodes) / m.Duration.Seconds()
}

type MoveMetric struct {
	Step         int
	Move         string
	Shortcut     bool // Chosen without search
	EarlyWin     bool
	BestWinRate  float64
	WorstWinRate float64
	SearchMetric
}

type GameMetric struct {
	Seed       uint64
	Outcome    string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Progress   float64 // Fraction of the deck on the foundations at the end
}

type Collector interface {
	Start(selector string, goroutines, candidates int)
	AddEpisode()
	AddWin()
	AddFullPlayout()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	selector     string
	goroutines   int
	candidates   int
	startTime    time.Time
	episodes     atomic.Int32
	wins         atomic.Int32
	fullPlayouts atomic.Int32
	cutoffs      atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(selector string, goroutines, candidates int) {
	m.startTime = time.Now()
	m.selector = selector
	m.goroutines = goroutines
	m.candidates = candidates
	m.episodes.Store(0)
	m.wins.Store(0)
	m.fullPlayouts.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddWin() {
	m.wins.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Selector:     m.selector,
		Goroutines:   m.goroutines,
		Candidates:   m.candidates,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		Wins:         int(m.wins.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(selector string, goroutines, candidates int) {}
func (m *dummyCollector) AddEpisode()                                       {}
func (m *dummyCollector) AddWin()                                           {}
func (m *dummyCollector) AddFullPlayout()                                   {}
func (m *dummyCollector) AddCutoff()                                        {}
func (m *dummyCollector) Complete() SearchMetric                            { return SearchMetric{} }
