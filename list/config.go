package list

import "fmt"

// Backend selects the implementation behind a List.
type Backend int

const (
	// ArrayBackend selects the ring buffer implementation.
	ArrayBackend Backend = iota
	// LinkedBackend selects the singly-linked implementation.
	LinkedBackend
)

func (b Backend) String() string {
	switch b {
	case ArrayBackend:
		return "array"
	case LinkedBackend:
		return "linked"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// Config configures a list created with New.
type Config struct {
	// Backend selects array or linked storage.
	Backend Backend
	// Capacity is the initial number of slots of an array list.
	// Ignored for linked lists.
	Capacity int
	// MaxCapacity bounds the number of elements a list may hold.
	// 0 means unbounded.
	MaxCapacity int
}

func (cfg Config) normalized() Config {
	if cfg.Backend == LinkedBackend {
		cfg.Capacity = 0
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	switch cfg.Backend {
	case ArrayBackend:
		if cfg.Capacity < 1 {
			return fmt.Errorf("%w: array capacity must be at least 1, is %d", ErrInvalidConfig, cfg.Capacity)
		}
		if cfg.MaxCapacity != 0 && cfg.MaxCapacity < cfg.Capacity {
			return fmt.Errorf("%w: max capacity %d below initial capacity %d",
				ErrInvalidConfig, cfg.MaxCapacity, cfg.Capacity)
		}
	case LinkedBackend:
	default:
		return fmt.Errorf("%w: unknown backend %v", ErrInvalidConfig, cfg.Backend)
	}
	if cfg.MaxCapacity < 0 {
		return fmt.Errorf("%w: negative max capacity", ErrInvalidConfig)
	}
	return nil
}
