package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/samdwyer/skirmish/internal/world"
)

// ErrInvalidConfig is returned for configurations no encounter can be
// built from.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible encounters.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Arena dimensions and how deeply the room generator splits it.
	Width       int
	Height      int
	BranchDepth int

	// Teams is the number of sides; each is filled up to CRTarget.
	Teams    int
	CRTarget float64

	// CreaturesFile replaces the embedded creature catalog when set.
	CreaturesFile string

	// LogLevel and LogFile configure structured logging. No file means no
	// logging, since the terminal belongs to the renderer.
	LogLevel string
	LogFile  string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		BranchDepth: world.DefaultBranchDepth,
		Teams:       2,
		CRTarget:    1,
		LogLevel:    "info",
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case c.Width < 3 || c.Height < 3:
		return fmt.Errorf("%w: arena %dx%d is too small", ErrInvalidConfig, c.Width, c.Height)
	case c.Teams < 1:
		return fmt.Errorf("%w: need at least one team, got %d", ErrInvalidConfig, c.Teams)
	case c.CRTarget <= 0:
		return fmt.Errorf("%w: CR target must be positive, got %g", ErrInvalidConfig, c.CRTarget)
	case c.BranchDepth < 0:
		return fmt.Errorf("%w: branch depth must not be negative, got %d", ErrInvalidConfig, c.BranchDepth)
	}
	return nil
}

// ResolveSeed returns the configured seed, or one taken from the clock
// when it is 0.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
