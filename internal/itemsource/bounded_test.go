package itemsource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foxglove-labs/pdflex/internal/itemsource"
)

func TestBoundedProviderPullsExactlyN(t *testing.T) {
	src := itemsource.NewByteSliceSource([]byte("abcdefgh"), 0, itemsource.Forward)
	p := itemsource.NewBoundedProvider[byte](src, 4)

	require.Equal(t, 4, p.Len())
	require.Equal(t, byte('a'), p.Peek(0))
	require.Equal(t, byte('d'), p.Peek(3))
	require.Equal(t, byte(0), p.Peek(4))

	require.Equal(t, byte('a'), p.Next())
	require.Equal(t, byte('b'), p.Next())
	require.Equal(t, byte('c'), p.Next())
	require.Equal(t, byte('d'), p.Next())
	require.False(t, p.HasNext())
	require.Equal(t, byte(0), p.Next())
}

func TestBoundedProviderShorterThanRequested(t *testing.T) {
	src := itemsource.NewByteSliceSource([]byte("ab"), 0, itemsource.Forward)
	p := itemsource.NewBoundedProvider[byte](src, 10)

	require.Equal(t, 2, p.Len())
	require.Equal(t, byte('a'), p.Next())
	require.Equal(t, byte('b'), p.Next())
	require.Equal(t, byte(0), p.Next())
}

func TestBoundedProviderFromItems(t *testing.T) {
	p := itemsource.NewBoundedProviderFromItems([]int{1, 2, 3}, -1)
	require.Equal(t, 1, p.Peek(0))
	p.Consume(2)
	require.Equal(t, 3, p.Next())
	require.Equal(t, -1, p.Next())
	require.Equal(t, 4, p.ItemsConsumed())
}
