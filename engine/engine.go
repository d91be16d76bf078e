package engine

import "go.uber.org/zap"

const (
	// realityThreshold classifies an eigenvalue as real when the absolute
	// value of its imaginary part falls below it. Classification depends
	// only on the eigenvalue, never on the eigenvector's imaginary parts.
	realityThreshold = 1e-10

	// normFloor is the smallest eigenvector norm that is still normalized.
	// Below it the raw solver output is returned unchanged.
	normFloor = 1e-10

	// DefaultTolerance is the alignment tolerance used when the caller
	// does not supply one.
	DefaultTolerance = 1e-6
)

// Engine is the stateless numerical module. It carries only a logger;
// every operation works on stack-local copies of its inputs.
type Engine struct {
	logger *zap.SugaredLogger
}

// New creates an Engine logging through the given sugared logger.
func New(logger *zap.SugaredLogger) *Engine {
	return &Engine{logger: logger}
}
