package config

import "context"

// Loader is the interface for a format-specific scenario loader.
type Loader interface {
	// Load reads every file under the given paths that the loader
	// understands and translates them into one Model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// Extensions lists the file extensions (with the leading dot) the
	// loader handles.
	Extensions() []string
}
