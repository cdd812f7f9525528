package cmock

import "context"

// MockGenerator is the boundary to the external mock generation library
type MockGenerator interface {
	// LoadConfig reads the options stored in a configuration file
	LoadConfig(path string) (Options, error)

	// SetupMocks generates mocks for the headers in files using opts
	SetupMocks(ctx context.Context, opts Options, files []string) error
}
