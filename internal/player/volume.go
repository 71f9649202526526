package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the output level (0.0 to 1.0). Zero silences the output.
func (p *Player) SetVolume(level float64) {
	level = min(max(level, 0), 1)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.volumeLevel = level
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Volume = levelToVolume(level)
	p.volume.Silent = level <= 0
	speaker.Unlock()
}

// Volume returns the current output level (0.0 to 1.0).
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumeLevel
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale where Volume is in "decibels" with base 2.
// Volume = 0 means no change, -1 = half volume, -2 = quarter, etc.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent)
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
