// Package tui runs a game in the terminal with Bubble Tea, locally or over
// SSH with Wish.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen names the model
// that scheduled it, so a replaced model's ticks are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int64
}

var tickGen atomic.Int64

// nextGen returns a fresh tick generation.
func nextGen() int64 {
	return tickGen.Add(1)
}

// tickCmd returns a command that sends one TickMsg after a tick interval.
func tickCmd(tickRate int, gen int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
