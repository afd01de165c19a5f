package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflightGuard_DropsOverlappingLoad(t *testing.T) {
	g := NewInflightGuard()

	release, err := g.Begin("sales")
	require.NoError(t, err)

	// A second load of the same type while one is pending is dropped.
	_, err = g.Begin("sales")
	assert.ErrorIs(t, err, ErrLoadInFlight)

	// Other report types are independent.
	releaseInv, err := g.Begin("inventory")
	require.NoError(t, err)
	releaseInv()

	release()
	release2, err := g.Begin("sales")
	require.NoError(t, err)
	release2()
}
