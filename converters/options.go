package converters

// Option customizes ToGraph / FromGraph.
type Option func(*config)

type config struct {
	dropZero   bool // ToGraph: skip terms whose coefficient is exactly 0
	allQubits  bool // ToGraph: add every register position as a node
	qubitCount int  // FromGraph: explicit register size; 0 means max(node)+1
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDropZeroTerms makes ToGraph skip terms whose coefficient is exactly
// zero. The qubits they reference still become nodes.
func WithDropZeroTerms() Option {
	return func(c *config) { c.dropZero = true }
}

// WithAllQubits makes ToGraph add every register position 0..n-1 as a node,
// including positions no term references.
func WithAllQubits() Option {
	return func(c *config) { c.allQubits = true }
}

// WithQubitCount fixes the register size used by FromGraph.
// Panics if n < 1.
func WithQubitCount(n int) Option {
	if n < 1 {
		panic("converters: WithQubitCount(n<1)")
	}
	return func(c *config) { c.qubitCount = n }
}
