package dpi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaleRoundsToNearest(t *testing.T) {
	require.Equal(t, 140, Scale(140, 96))
	require.Equal(t, 175, Scale(140, 120))
	require.Equal(t, 210, Scale(140, 144))
	// 3 * 120 / 96 = 3.75
	require.Equal(t, 4, Scale(3, 120))
	// 5 * 106 / 96 = 5.52
	require.Equal(t, 6, Scale(5, 106))
	require.Equal(t, -4, Scale(-3, 120))
	require.Equal(t, 10, Scale(10, 0))
}

func TestFromFactor(t *testing.T) {
	require.Equal(t, 96, FromFactor(1))
	require.Equal(t, 120, FromFactor(1.25))
	require.Equal(t, 192, FromFactor(2))
	require.Equal(t, 96, FromFactor(0))
}
