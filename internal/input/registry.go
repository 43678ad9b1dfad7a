package input

import (
	"fmt"
	"sort"
	"sync"
)

// Options configures the control schemes and keyboard mapping.
type Options struct {
	Scheme        string  // Registered scheme ID
	ButtonSize    float64 // Button diameter in viewport units
	Margin        float64 // Gap between controls and the viewport edge
	RotateSpeed   float64 // Keyboard and D-pad turn rate, rad/s
	DeadZone      float64 // D-pad and drag dead-zone radius in viewport units
	StickRadius   float64 // Joystick max handle travel
	StickDeadZone float64 // Fraction of StickRadius before the joystick engages
	SteerGain     float64 // Joystick turn rate per radian of heading error
}

// DefaultOptions returns the stock control layout.
func DefaultOptions() Options {
	return Options{
		Scheme:        "buttons",
		ButtonSize:    60,
		Margin:        20,
		RotateSpeed:   5,
		DeadZone:      10,
		StickRadius:   50,
		StickDeadZone: 0.3,
		SteerGain:     5,
	}
}

// SchemeInfo contains metadata about a registered scheme.
type SchemeInfo struct {
	ID    string
	Title string
}

// Factory creates a new scheme instance.
type Factory func(opts Options) Scheme

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scheme factory to the registry.
// Typically called from a scheme's init() function.
// Panics if a scheme with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("input: scheme %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(DefaultOptions()).Title()
}

// List returns all registered schemes, sorted by ID.
func List() []SchemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SchemeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SchemeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scheme by ID.
func Create(id string, opts Options) (Scheme, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("input: unknown control scheme %q", id)
	}

	return f(opts), nil
}

// Exists checks if a scheme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
