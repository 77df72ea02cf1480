package cmd

import (
	"testing"

	"go.uber.org/goleak"
)

// render --all fans out with errgroup; every worker must be gone when the
// command returns.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
