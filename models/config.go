package models

// ExtractConfig holds runtime configuration for extract operations.
// All values come from CLI flags, not external config files.
type ExtractConfig struct {
	Paths       []string
	Fields      []string
	WorkerCount int
}
