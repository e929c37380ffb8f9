package touchstrip

import (
	"time"

	"github.com/sirupsen/logrus"
)

// frameStats holds per-frame counters and timing.
// Only populated when Panel.debug is true.
type frameStats struct {
	frame       uint64
	updates     int
	touches     int
	steps       int
	engages     int
	disengages  int
	processTime time.Duration
}

// debugLog logs one frame's stats. Frames with no updates and no tracked
// touches are skipped to keep idle ticks quiet.
func (p *Panel) debugLog(stats frameStats) {
	if !p.debug {
		return
	}
	if stats.updates == 0 && stats.touches == 0 && stats.steps == 0 {
		return
	}
	p.log.WithFields(logrus.Fields{
		"frame":      stats.frame,
		"updates":    stats.updates,
		"touches":    stats.touches,
		"steps":      stats.steps,
		"engages":    stats.engages,
		"disengages": stats.disengages,
		"active":     p.claims.Active().String(),
		"took":       stats.processTime,
	}).Info("touchstrip: frame")
}
