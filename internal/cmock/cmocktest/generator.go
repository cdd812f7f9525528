// Package cmocktest provides a test double for cmock.MockGenerator.
package cmocktest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/toyz/cmockgen/internal/cmock"
)

// Generator is a testify mock of cmock.MockGenerator
type Generator struct {
	mock.Mock

	// ReadConfig makes LoadConfig parse the real file instead of consulting expectations
	ReadConfig bool
}

var _ cmock.MockGenerator = (*Generator)(nil)

// LoadConfig records the call, or reads the file when ReadConfig is set
func (g *Generator) LoadConfig(path string) (cmock.Options, error) {
	if g.ReadConfig {
		return cmock.LoadConfigFile(path)
	}
	args := g.Called(path)
	opts, _ := args.Get(0).(cmock.Options)
	return opts, args.Error(1)
}

// SetupMocks records the call
func (g *Generator) SetupMocks(ctx context.Context, opts cmock.Options, files []string) error {
	return g.Called(ctx, opts, files).Error(0)
}
