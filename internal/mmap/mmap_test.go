//go:build unix

package mmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundUp(t *testing.T) {
	require.Equal(t, PageSize, RoundUp(0))
	require.Equal(t, PageSize, RoundUp(1))
	require.Equal(t, PageSize, RoundUp(PageSize))
	require.Equal(t, 2*PageSize, RoundUp(PageSize+1))
}

func TestMapProtect(t *testing.T) {
	b, err := Map(PageSize)
	require.NoError(t, err)
	require.Len(t, b, PageSize)

	for i := range b[:64] {
		b[i] = byte(i)
	}
	require.NoError(t, Protect(b, true))
	require.NoError(t, SyncInstructionCache(b[:64]))
	require.NoError(t, SyncInstructionCache(nil))
	PipelineFlush()
	require.Equal(t, byte(63), b[63])

	require.NoError(t, Protect(b, false))
	b[0] = 0xff
	require.Equal(t, byte(0xff), b[0])
	require.NoError(t, Unmap(b))
}
