package surface

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'surface'.
func tracer() tracing.Trace {
	return tracing.Select("surface")
}
