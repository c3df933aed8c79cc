package game

import "github.com/lixenwraith/monster-shooter/core"

// Outcome is the terminal result of a session
type Outcome struct {
	Won     bool
	Score   int
	Field   Field
	Session string
}

// Outcomes delivers the single outcome of the session
func (c *Controller) Outcomes() <-chan Outcome {
	return c.outcomes
}

// Outcome returns the latched outcome, if any
func (c *Controller) Outcome() (Outcome, bool) {
	if c.outcome == nil {
		return Outcome{}, false
	}
	return *c.outcome, true
}

// Finished reports whether the session has ended
func (c *Controller) Finished() bool {
	return c.outcome != nil
}

// finish latches the first outcome; later triggers are dropped
func (c *Controller) finish(won bool) {
	if c.outcome != nil {
		return
	}
	o := Outcome{Won: won, Score: c.score, Field: c.field, Session: c.session}
	c.outcome = &o
	c.spawner.Stop()

	if won {
		c.statWins.Add(1)
		c.sound.Play(core.SoundWin)
	} else {
		c.statLosses.Add(1)
		c.sound.Play(core.SoundLose)
	}
	c.log.Printf("session %s over: won=%v score=%d", c.session, won, c.score)

	// Capacity 1 and a single latch, never blocks
	c.outcomes <- o
}
