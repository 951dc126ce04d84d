package fab

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// debugStats holds per-frame timing and redraw metrics.
// Only populated when Host.debug is true.
type debugStats struct {
	updateTime    time.Duration
	renderTime    time.Duration
	compositeTime time.Duration
	tasksRun      int
	redrawn       int
	composited    int
	pending       int
	nextTask      time.Duration // until the earliest queued task; 0 when none
}

// debugLog logs timing and redraw stats at debug level.
func (h *Host) debugLog(stats debugStats) {
	if !h.debug {
		return
	}
	h.log().WithFields(log.Fields{
		"update":     stats.updateTime,
		"render":     stats.renderTime,
		"composite":  stats.compositeTime,
		"tasks":      stats.tasksRun,
		"redrawn":    stats.redrawn,
		"composited": stats.composited,
		"pending":    stats.pending,
		"next_task":  stats.nextTask,
		"buttons":    len(h.buttons),
	}).Debug("frame")
}
