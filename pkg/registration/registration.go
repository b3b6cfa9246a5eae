// Package registration hands a compiled table to the property store that
// serves it at runtime.
package registration

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

// InitialValueFunc returns the initial values of one property, one per area.
type InitialValueFunc func() []vehicle.PropValue

// Sink receives property registrations.
type Sink interface {
	RegisterProperty(cfg vehicle.PropertyConfig, initial InitialValueFunc) error
}

// Allocate returns the initial values of decl. A property without areas gets
// one value for area 0. Otherwise each area gets its own initial value if it
// has one and the global initial value if not. Areas left without any value
// are skipped.
func Allocate(decl vehicle.ConfigDeclaration) []vehicle.PropValue {
	prop := decl.Config.Prop

	if len(decl.Config.AreaConfigs) == 0 {
		if decl.InitialValue.IsEmpty() {
			return nil
		}
		return []vehicle.PropValue{{Prop: prop, Value: decl.InitialValue}}
	}

	out := make([]vehicle.PropValue, 0, len(decl.Config.AreaConfigs))
	for _, area := range decl.Config.AreaConfigs {
		value, ok := decl.InitialAreaValues[area.AreaID]
		if !ok {
			value = decl.InitialValue
		}
		if value.IsEmpty() {
			continue
		}
		out = append(out, vehicle.PropValue{Prop: prop, AreaID: area.AreaID, Value: value})
	}
	return out
}

// Register registers every declaration of table with sink in id order. A
// failed registration does not stop the others; the number of successful
// registrations and the joined errors are returned.
func Register(sink Sink, table vehicle.Table) (int, error) {
	var (
		registered int
		errs       []error
	)
	for _, decl := range table.Declarations() {
		err := sink.RegisterProperty(decl.Config, func() []vehicle.PropValue {
			return Allocate(decl)
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("registering property 0x%08x: %w", uint32(decl.Config.Prop), err))
			continue
		}
		registered++
	}
	return registered, errors.Join(errs...)
}

// ErrDuplicate is returned by MemorySink for a property registered twice.
var ErrDuplicate = errors.New("property already registered")

// MemorySink is an in-memory Sink. It evaluates the initial values at
// registration time.
type MemorySink struct {
	mu      sync.RWMutex
	configs map[int32]vehicle.PropertyConfig
	values  map[int32][]vehicle.PropValue
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		configs: make(map[int32]vehicle.PropertyConfig),
		values:  make(map[int32][]vehicle.PropValue),
	}
}

// RegisterProperty implements Sink.
func (s *MemorySink) RegisterProperty(cfg vehicle.PropertyConfig, initial InitialValueFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[cfg.Prop]; ok {
		return fmt.Errorf("%w: 0x%08x", ErrDuplicate, uint32(cfg.Prop))
	}
	s.configs[cfg.Prop] = cfg
	if initial != nil {
		s.values[cfg.Prop] = initial()
	}
	return nil
}

// Config returns the registered config of prop.
func (s *MemorySink) Config(prop int32) (vehicle.PropertyConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[prop]
	return cfg, ok
}

// Values returns the initial values registered for prop.
func (s *MemorySink) Values(prop int32) []vehicle.PropValue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[prop]
}

// Len returns the number of registered properties.
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.configs)
}

// Compile-time interface satisfaction check.
var _ Sink = (*MemorySink)(nil)
