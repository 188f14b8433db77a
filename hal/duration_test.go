package hal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMillisecondToMicrosecond(t *testing.T) {
	testCases := []struct {
		in   Millisecond
		want Microsecond
	}{
		{0, 0},
		{1, 1_000},
		{50, 50_000},
		{1_000, 1_000_000},
		{86_400_000, 86_400_000_000}, // one day
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, tc.in.Microseconds(), "Millisecond(%d)", tc.in)
	}
}

func TestSecondToMicrosecond(t *testing.T) {
	testCases := []struct {
		in   Second
		want Microsecond
	}{
		{0, 0},
		{1, 1_000_000},
		{10, 10_000_000},
		{3_600, 3_600_000_000},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, tc.in.Microseconds(), "Second(%d)", tc.in)
	}
}

func TestMicrosecondIdentity(t *testing.T) {
	for _, us := range []Microsecond{0, 1, 999, 1_000_000_000} {
		require.Equal(t, us, us.Microseconds())
	}
}

func TestMicrosecondStd(t *testing.T) {
	require.Equal(t, 50*time.Millisecond, Microsecond(50_000).std())
	require.Equal(t, time.Duration(0), Microsecond(0).std())
}

func TestWideningConstructors(t *testing.T) {
	// Every supported width lands on the same value
	require.Equal(t, Microsecond(200), Us(uint8(200)))
	require.Equal(t, Microsecond(60_000), Us(uint16(60_000)))
	require.Equal(t, Microsecond(4_000_000_000), Us(uint32(4_000_000_000)))
	require.Equal(t, Microsecond(1<<40), Us(uint64(1<<40)))

	require.Equal(t, Millisecond(255), Ms(uint8(255)))
	require.Equal(t, Second(30), Sec(uint16(30)))

	// Widened values convert the same as directly constructed ones
	require.Equal(t, Millisecond(100).Microseconds(), Ms(uint8(100)).Microseconds())
	require.Equal(t, Second(2).Microseconds(), Sec(uint32(2)).Microseconds())
}
