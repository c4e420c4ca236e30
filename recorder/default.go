package recorder

import (
	"sync"

	"github.com/hupe1980/telemetry/core"
)

var defaultInstance struct {
	once sync.Once
	r    *Recorder
}

// Default returns the process-wide Recorder, creating it from s and optFns on
// the first call. Concurrent first callers block until construction finishes
// and all receive the same instance; arguments of later calls are ignored.
func Default(s core.Store, optFns ...func(o *Options)) *Recorder {
	defaultInstance.once.Do(func() {
		defaultInstance.r = New(s, optFns...)
	})
	return defaultInstance.r
}
