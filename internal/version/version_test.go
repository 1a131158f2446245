package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionInfo(t *testing.T) {
	assert.Equal(t, "dev", GetVersion())
	assert.Contains(t, GetVersionInfo(), "Dailynote dev")

	Version, Commit, Date = "1.2.0", "abc123", "2026-10-17"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	assert.Equal(t, "1.2.0", GetVersion())
	assert.Contains(t, GetVersionInfo(), "Dailynote 1.2.0 (commit: abc123, built: 2026-10-17")
}
