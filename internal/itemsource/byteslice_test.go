package itemsource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foxglove-labs/pdflex/internal/itemsource"
)

func TestByteSliceSourceForward(t *testing.T) {
	src := itemsource.NewByteSliceSource([]byte("hello world"), 0, itemsource.Forward)

	require.Equal(t, byte(0), src.DummyItem())
	require.Equal(t, int64(0), src.CurrentIndex(0))
	require.Equal(t, int64(3), src.CurrentIndex(3))

	got := src.NextItems(5)
	require.Equal(t, []byte("hello"), got)

	got = src.NextItems(100)
	require.Equal(t, []byte(" world"), got)

	require.Nil(t, src.NextItems(1))
}

func TestByteSliceSourceForwardWithStart(t *testing.T) {
	src := itemsource.NewByteSliceSource([]byte("hello world"), 6, itemsource.Forward)
	got := src.NextItems(5)
	require.Equal(t, []byte("world"), got)
	require.Equal(t, int64(11), src.CurrentIndex(5))
}

func TestByteSliceSourceBackward(t *testing.T) {
	data := []byte("hello world")
	src := itemsource.NewByteSliceSource(data, int64(len(data)-1), itemsource.Backward)

	got := src.NextItems(5)
	require.Equal(t, []byte("dlrow"), got)

	got = src.NextItems(100)
	require.Equal(t, []byte(" olleh"), got)

	require.Nil(t, src.NextItems(1))
}

func TestByteSliceSourceBackwardCurrentIndexDecreases(t *testing.T) {
	data := []byte("abcdef")
	src := itemsource.NewByteSliceSource(data, 5, itemsource.Backward)

	require.Equal(t, int64(5), src.CurrentIndex(0))
	require.Equal(t, int64(4), src.CurrentIndex(1))
	require.Equal(t, int64(2), src.CurrentIndex(3))
}
