package softfloat

import "sync"

// Package configuration (teacher's Config/Configure/GetConfig trio,
// zerfoo-float16/float16.go), extended to also hold the selected
// NaNPolicy and DefaultNaNStyle (spec §9's "NaN-policy target selection"
// design note, lifted to a runtime policy object rather than build
// tags). NewStatus reads this to seed a fresh Status's defaults, so a
// caller that wants every operation in the process to target, say, x87
// NaN semantics can Configure once instead of setting every Status by
// hand.
type Config struct {
	DefaultRoundingMode RoundingMode
	DefaultNaNPolicy    NaNPolicy
	DefaultNaNStyle     DefaultNaNStyle

	// EnableHostFastPath gates the f32/f64 host-FPU fast path (spec
	// §4.13); disabling it forces every operation through the full
	// soft-path state machine, useful for differential testing against
	// the fast path itself.
	EnableHostFastPath bool
}

// DefaultConfig returns the IEEE-default package configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultRoundingMode: RoundNearestEven,
		DefaultNaNPolicy:    IEEEDefaultNaNPolicy,
		DefaultNaNStyle:     DefaultNaNIEEE754,
		EnableHostFastPath:  true,
	}
}

var (
	configMu sync.RWMutex
	config   = DefaultConfig()
)

// Configure applies cfg as the package's active configuration. Safe to
// call concurrently with GetConfig and with NewStatus.
func Configure(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	config = cfg
}

// GetConfig returns a copy of the current package configuration.
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	c := *config
	return &c
}
