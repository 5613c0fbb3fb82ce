package factory

import (
	"github.com/aspect/anchor/internal/storage/memory"
	"github.com/aspect/anchor/internal/testutil"
)

// NewTestApp creates an App backed by in-memory storage for testing
func NewTestApp() *App {
	return newWithDependencies(memory.New(), 0, testutil.NopLogger())
}
