package hierarchy

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hierarchy'
func tracer() tracing.Trace {
	return tracing.Select("hierarchy")
}
