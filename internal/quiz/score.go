package quiz

import (
	"fmt"
	"sync"
)

// Grade formats a correct/attempted pair as a one-decimal percentage.
// Zero attempts yields "N/A".
func Grade(correct, attempted int) string {
	if attempted == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", float64(correct)/float64(attempted)*100)
}

// Scoreboard tracks correct/attempted counts across all sections for
// the life of the process.
type Scoreboard struct {
	mu        sync.Mutex
	correct   int
	attempted int
}

// NewScoreboard creates an empty scoreboard.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// RecordAttempt registers one answered question.
func (b *Scoreboard) RecordAttempt(correct bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attempted++
	if correct {
		b.correct++
	}
}

// Totals returns the current correct and attempted counts.
func (b *Scoreboard) Totals() (correct, attempted int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.correct, b.attempted
}

// Grade returns the overall grade string.
func (b *Scoreboard) Grade() string {
	correct, attempted := b.Totals()
	return Grade(correct, attempted)
}
