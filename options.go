package textmesh

// Option configures a Mesher during creation.
//
// Example:
//
//	// Default quality
//	m := textmesh.NewMesher("arial.ttf", 48)
//
//	// Smoother curves, typesetting parser backend
//	m := textmesh.NewMesher("arial.ttf", 48,
//	    textmesh.WithBezierSteps(8),
//	    textmesh.WithParser("gotext"))
type Option func(*mesherOptions)

// mesherOptions holds optional configuration for Mesher creation.
type mesherOptions struct {
	bezierSteps int
	kerning     bool
	parserName  string
}

// defaultMesherOptions returns the default mesher options.
func defaultMesherOptions() mesherOptions {
	return mesherOptions{
		bezierSteps: DefaultBezierSteps,
		kerning:     true,
		parserName:  defaultParserName,
	}
}

// DefaultBezierSteps is the default number of straight sub-segments a
// curved outline segment is flattened into. Higher values give smoother
// curved corners at the cost of more vertices; 4 is a good trade-off.
const DefaultBezierSteps = 4

// WithBezierSteps sets the number of straight sub-segments per curved
// outline segment. Values below 1 are clamped to 1.
func WithBezierSteps(steps int) Option {
	return func(o *mesherOptions) {
		if steps < 1 {
			steps = 1
		}
		o.bezierSteps = steps
	}
}

// WithKerning enables or disables kerning adjustment between adjacent
// glyphs. Kerning is enabled by default.
func WithKerning(enabled bool) Option {
	return func(o *mesherOptions) {
		o.kerning = enabled
	}
}

// WithParser selects the font parser backend by registered name
// ("ximage" is the default, "gotext" is built in). Unknown names fall
// back to the default backend.
func WithParser(name string) Option {
	return func(o *mesherOptions) {
		o.parserName = name
	}
}
