package reports

import (
	"context"
	"sort"
	"sync"

	"logreport/internal/models"
)

// Report is one report kind. Generate turns a record sequence into the text
// the CLI prints; adding a report kind means implementing this interface and
// registering it, nothing in the pipeline changes.
type Report interface {
	Name() string
	Generate(ctx context.Context, records []models.LogRecord) (string, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Report)
)

// Register adds a report kind. Registering the same name twice panics, as
// that is always a programming error.
func Register(r Report) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[r.Name()]; exists {
		panic("reports: duplicate report kind " + r.Name())
	}
	registry[r.Name()] = r
}

// Get resolves a report kind by name. Unknown names yield an
// invalid-argument error listing the supported kinds.
func Get(name string) (Report, error) {
	registryMu.RLock()
	r, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errUnknownReport(name)
	}
	return r, nil
}

// Supported returns the registered report names in sorted order.
func Supported() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
