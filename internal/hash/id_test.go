package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_Deterministic(t *testing.T) {
	require.Equal(t, ID("atom_site"), ID("atom_site"))
	require.NotEqual(t, ID("atom_site"), ID("atom_site.x"))
}

func TestID_EmptyName(t *testing.T) {
	// The xxHash64 digest of the empty input with the default zero seed.
	require.Equal(t, uint64(0xEF46DB3751D8E999), ID(""))
}
