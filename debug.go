package thicket

import "time"

// debugStats holds per-tick timing. Only logged when the screen is in
// debug mode.
type debugStats struct {
	updateTime  time.Duration
	flushTime   time.Duration
	totalTime   time.Duration
	screenshots int
}

// debugLog reports tick timing through Logger.
func (s *Screen) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("tick",
		"tick", s.ticks,
		"update", stats.updateTime,
		"flush", stats.flushTime,
		"total", stats.totalTime,
		"screenshots", stats.screenshots,
		"injected_pending", len(s.injectQueue))
}
