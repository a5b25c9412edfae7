package i

import "time"

// MetricsRecorder observes maze generation.
type MetricsRecorder interface {
	ObserveGenerate(d time.Duration, perfect bool, pathLength int)
	IncCacheResult(result string)
}
