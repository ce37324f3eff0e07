package state

import "fmt"

// MinutesPerDay is the length of one in-game day.
const MinutesPerDay = 60 * 24

// Day returns how many whole days have passed since the start of the game.
func (w *World) Day() int {
	return w.Clock / MinutesPerDay
}

// TimeOfDay returns minutes since midnight of the current day.
func (w *World) TimeOfDay() int {
	return w.Clock % MinutesPerDay
}

// ClockString formats the time of day as HH:MM.
func (w *World) ClockString() string {
	t := w.TimeOfDay()
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// Advance moves the clock forward. Negative values are ignored so the clock
// never runs backwards.
func (w *World) Advance(minutes int) {
	if minutes > 0 {
		w.Clock += minutes
	}
}

// HM converts hours and minutes to minutes since midnight.
func HM(h, m int) int {
	return h*60 + m
}
