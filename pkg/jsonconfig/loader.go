package jsonconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/rpi-demonstrator/vhal-go/pkg/constants"
	vlog "github.com/rpi-demonstrator/vhal-go/pkg/log"
	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// Loader compiles configuration documents. A Loader is immutable after
// construction and safe for concurrent use; each call keeps its own error
// list.
type Loader struct {
	system *ConfigParser
	vendor *ConfigParser
	flat   bool

	logger *slog.Logger
	events vlog.Logger
}

type loaderOptions struct {
	logger      *slog.Logger
	events      vlog.Logger
	system      *constants.Registry
	vendor      *constants.Registry
	registryOps []constants.Option
	flat        bool
}

// Option configures a Loader.
type Option func(*loaderOptions)

// WithLogger sets the logger for operational messages.
func WithLogger(logger *slog.Logger) Option {
	return func(o *loaderOptions) { o.logger = logger }
}

// WithEventLogger sets the receiver of load events.
func WithEventLogger(events vlog.Logger) Option {
	return func(o *loaderOptions) { o.events = events }
}

// WithRegistries uses prebuilt registries instead of building them.
// WithTestConstants and WithSchemaFiles have no effect when set.
func WithRegistries(system, vendor *constants.Registry) Option {
	return func(o *loaderOptions) {
		o.system = system
		o.vendor = vendor
	}
}

// WithTestConstants includes the test-only named constants in both registries.
func WithTestConstants() Option {
	return func(o *loaderOptions) {
		o.registryOps = append(o.registryOps, constants.WithTestConstants())
	}
}

// WithSchemaFiles layers enumeration schema files on top of the built-in
// tables.
func WithSchemaFiles(paths ...string) Option {
	return func(o *loaderOptions) {
		o.registryOps = append(o.registryOps, constants.WithSchemaFiles(paths...))
	}
}

// WithFlat disables the namespace split. Every element is parsed against the
// system registry.
func WithFlat() Option {
	return func(o *loaderOptions) { o.flat = true }
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) (*Loader, error) {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}

	var err error
	if o.system == nil {
		if o.system, err = constants.NewRegistry(constants.TierSystem, o.registryOps...); err != nil {
			return nil, fmt.Errorf("building system registry: %w", err)
		}
	}
	if o.vendor == nil {
		if o.vendor, err = constants.NewRegistry(constants.TierVendor, o.registryOps...); err != nil {
			return nil, fmt.Errorf("building vendor registry: %w", err)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.events == nil {
		o.events = vlog.NoopLogger{}
	}

	return &Loader{
		system: NewConfigParser(o.system),
		vendor: NewConfigParser(o.vendor),
		flat:   o.flat,
		logger: o.logger,
		events: o.events,
	}, nil
}

// SystemRegistry returns the registry system properties resolve against.
func (l *Loader) SystemRegistry() *constants.Registry {
	return l.system.values.Registry()
}

// VendorRegistry returns the registry vendor properties resolve against.
func (l *Loader) VendorRegistry() *constants.Registry {
	return l.vendor.values.Registry()
}

// Load compiles the document read from r.
func (l *Loader) Load(r io.Reader) (vehicle.Table, error) {
	return l.load(r, "")
}

// LoadBytes compiles the document in data.
func (l *Loader) LoadBytes(data []byte) (vehicle.Table, error) {
	return l.load(bytes.NewReader(data), "")
}

// LoadFile compiles the document stored at path.
func (l *Loader) LoadFile(path string) (vehicle.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		lerr := documentError(path, ErrIO, fmt.Sprintf("couldn't open %s for parsing.", path), err)
		l.finish(newLoadID(), path, nil, lerr)
		return nil, lerr
	}
	defer f.Close()

	return l.load(f, path)
}

// load runs one compilation. source is the file path, empty for streams.
func (l *Loader) load(r io.Reader, source string) (vehicle.Table, error) {
	id := newLoadID()
	l.logger.Debug("loading property config", "load_id", id, "source", source)
	l.events.Log(vlog.Event{
		Timestamp: time.Now(),
		LoadID:    id,
		Category:  vlog.CategoryLoadStarted,
		Source:    source,
	})

	table, lerr := l.compile(r, source, id)
	l.finish(id, source, table, lerr)
	if lerr != nil {
		return nil, lerr
	}
	return table, nil
}

func (l *Loader) compile(r io.Reader, source, id string) (vehicle.Table, *LoadError) {
	props, lerr := decodeProperties(r, source)
	if lerr != nil {
		return nil, lerr
	}

	var errs ErrorList
	if l.flat {
		table := l.system.ParseProperties(props, &errs, l.observe(id, constants.TierSystem))
		if errs.Len() > 0 {
			return nil, &LoadError{File: source, Errors: errs}
		}
		return table, nil
	}

	part := Split(props, &errs)
	system := l.system.ParseProperties(part.System, &errs, l.observe(id, constants.TierSystem))
	vendor := l.vendor.ParseProperties(part.Vendor, &errs, l.observe(id, constants.TierVendor))
	if errs.Len() > 0 {
		return nil, &LoadError{File: source, Errors: errs}
	}
	return merge(vendor, system), nil
}

// observe returns a callback emitting one event per parsed element.
func (l *Loader) observe(id string, tier constants.Tier) func(Entry) {
	return func(e Entry) {
		event := vlog.Event{
			Timestamp:  time.Now(),
			LoadID:     id,
			Category:   vlog.CategoryPropertyAccepted,
			Namespace:  tier.String(),
			PropertyID: e.PropertyID,
		}
		if !e.Accepted {
			event.Category = vlog.CategoryPropertyRejected
			event.Messages = e.Errors.Messages()
		}
		l.events.Log(event)
	}
}

func (l *Loader) finish(id, source string, table vehicle.Table, lerr *LoadError) {
	event := vlog.Event{
		Timestamp: time.Now(),
		LoadID:    id,
		Source:    source,
	}
	if lerr != nil {
		event.Category = vlog.CategoryLoadFailed
		event.Messages = lerr.Errors.Messages()
		l.logger.Warn("property config load failed",
			"load_id", id, "source", source, "errors", lerr.Errors.Len())
	} else {
		event.Category = vlog.CategoryLoadFinished
		event.Count = len(table)
		l.logger.Info("loaded property config",
			"load_id", id, "source", source, "properties", len(table))
	}
	l.events.Log(event)
}

// decodeProperties parses the document and returns its "properties" array.
func decodeProperties(r io.Reader, source string) ([]any, *LoadError) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, decodeError(source, err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("%w: %v", errTrailingData, tok)
		}
		return nil, decodeError(source, err)
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, documentError(source, ErrStructural, "root element must be an object", nil)
	}
	props, ok := obj["properties"].([]any)
	if !ok {
		return nil, documentError(source, ErrStructural,
			"Missing 'properties' field in root or the field is not an array", nil)
	}
	return props, nil
}

func decodeError(source string, err error) *LoadError {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr), errors.Is(err, errTrailingData),
		errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return documentError(source, ErrJSONSyntax,
			"Failed to parse property config file as JSON, error: "+err.Error(), err)
	default:
		name := source
		if name == "" {
			name = "input"
		}
		return documentError(source, ErrIO, fmt.Sprintf("couldn't read %s for parsing: %v", name, err), err)
	}
}

func newLoadID() string {
	return uuid.NewString()
}
