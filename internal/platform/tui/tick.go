// Package tui runs fishrun in a terminal with Bubble Tea, locally or over
// SSH. It owns wall-clock timing and key state; games only see InputFrames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into frame durations. Bubble Tea ticks
// drift, so the simulation is fed measured time rather than the nominal rate.
type frameClock struct {
	last time.Time
}

// Next returns seconds since the previous tick. The first tick, and any
// tick that does not move forward, yields fallback.
func (c *frameClock) Next(now time.Time, fallback float64) float64 {
	if c.last.IsZero() {
		c.last = now
		return fallback
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt <= 0 {
		return fallback
	}
	return dt
}

// Reset forgets the previous tick.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
