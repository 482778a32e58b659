// Package features exposes boolean feature flags loaded from configuration.
package features

// Batches is the flag name for the batch-generation surface. It is read at
// startup but currently gates no behavior.
const Batches = "batches"

// Flags answers "is this feature enabled" queries by name.
type Flags struct {
	enabled map[string]bool
}

// New builds Flags from a name->enabled map. A nil map means all flags are
// disabled.
func New(enabled map[string]bool) Flags {
	return Flags{enabled: enabled}
}

// Enabled reports whether the named feature is enabled. Unknown names are
// disabled.
func (f Flags) Enabled(name string) bool {
	return f.enabled[name]
}
