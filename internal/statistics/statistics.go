package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Game     int           // Index within the batch
	Seed     uint64        // RNG seed for this game (for replay)
	Winner   int           // Seat that emptied its hand first
	Turns    int           // Accepted turns including passes
	Bombs    int           // Quadruplets and joker bombs played
	Duration time.Duration // Wall time spent in the game loop
}

// Statistics tracks win rates per seat and game length
type Statistics struct {
	Games     int
	Wins      []int     // Indexed by seat
	SumTurns  float64
	SumTurns2 float64   // Sum of squares for variance calculation
	Values    []float64 // Store all turn counts for median/percentile calculation
	Bombs     int
	MaxTurns  int
	TotalTime time.Duration
}

// New creates statistics for a table of seats
func New(seats int) *Statistics {
	return &Statistics{Wins: make([]int, seats)}
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	turns := float64(result.Turns)
	s.Games++
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Values = append(s.Values, turns)
	s.Bombs += result.Bombs
	s.TotalTime += result.Duration

	if result.Turns > s.MaxTurns {
		s.MaxTurns = result.Turns
	}
	if result.Winner >= 0 && result.Winner < len(s.Wins) {
		s.Wins[result.Winner]++
	}
}

// WinRate returns the fraction of games won by seat
func (s *Statistics) WinRate(seat int) float64 {
	if s.Games == 0 || seat < 0 || seat >= len(s.Wins) {
		return 0
	}
	return float64(s.Wins[seat]) / float64(s.Games)
}

// ConfidenceInterval95 returns the normal-approximation 95% interval for a
// seat's win rate
func (s *Statistics) ConfidenceInterval95(seat int) (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	p := s.WinRate(seat)
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(s.Games))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// MeanTurns returns the arithmetic mean game length in turns
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// VarianceTurns returns the sample variance of game length
func (s *Statistics) VarianceTurns() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanTurns()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDevTurns returns the sample standard deviation of game length
func (s *Statistics) StdDevTurns() float64 {
	return math.Sqrt(s.VarianceTurns())
}

// StdErrorTurns returns the standard error of the mean game length
func (s *Statistics) StdErrorTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDevTurns() / math.Sqrt(float64(s.Games))
}

// MedianTurns returns the median game length
func (s *Statistics) MedianTurns() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the game length at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// MeanDuration returns the average wall time per game
func (s *Statistics) MeanDuration() time.Duration {
	if s.Games == 0 {
		return 0
	}
	return s.TotalTime / time.Duration(s.Games)
}

// Validate performs consistency checks on the collected data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	totalWins := 0
	for _, w := range s.Wins {
		totalWins += w
	}
	if totalWins != s.Games {
		return fmt.Errorf("total wins (%d) does not match games count (%d)", totalWins, s.Games)
	}

	return nil
}
