package content

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ip812/helloadp/logger"
	"github.com/ip812/helloadp/o11y"
)

var (
	t1 = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
)

func TestResolver_ExactPath(t *testing.T) {
	fsys := fstest.MapFS{"guides/a.mdx": {Data: []byte("x"), ModTime: t1}}
	r := NewResolver(fsys, ".mdx", 4, logger.NewNop())

	ts := r.Resolve("guides/a.mdx")
	got, ok := ts.Time()
	require.True(t, ok)
	require.True(t, got.Equal(t1))
	require.Equal(t, t1.UnixMilli(), ts.UnixMilli())
}

func TestResolver_AppendsCanonicalExtension(t *testing.T) {
	fsys := fstest.MapFS{"guides/a.mdx": {Data: []byte("x"), ModTime: t2}}
	r := NewResolver(fsys, ".mdx", 4, logger.NewNop())

	ts := r.Resolve("/guides/a")
	require.True(t, ts.Known())
	require.Equal(t, t2.UnixMilli(), ts.UnixMilli())
}

func TestResolver_MissingFileIsUnknown(t *testing.T) {
	fsys := fstest.MapFS{"guides/a.mdx": {Data: []byte("x"), ModTime: t2}}
	r := NewResolver(fsys, ".mdx", 4, logger.NewNop())

	before := testutil.ToFloat64(o11y.UnknownModTimes)

	for _, p := range []string{"guides/missing.mdx", "guides/missing", "../outside.mdx", ""} {
		ts := r.Resolve(p)
		require.False(t, ts.Known(), p)
		require.Zero(t, ts.UnixMilli(), p)
	}

	require.Equal(t, before+4, testutil.ToFloat64(o11y.UnknownModTimes))
}

func TestResolver_ResolveAllKeepsPageOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"a.mdx": {Data: []byte("x"), ModTime: t1},
		"c.mdx": {Data: []byte("x"), ModTime: t2},
	}
	r := NewResolver(fsys, ".mdx", 2, logger.NewNop())

	pages := []Page{
		{File: File{Name: "a", Ext: ".mdx"}},
		{File: File{Name: "b", Ext: ".mdx"}},
		{File: File{Name: "c", Ext: ".mdx"}},
	}
	got := r.ResolveAll(pages)

	require.Len(t, got, 3)
	require.Equal(t, t1.UnixMilli(), got[0].UnixMilli())
	require.False(t, got[1].Known())
	require.Equal(t, t2.UnixMilli(), got[2].UnixMilli())
}

func TestTimestamp_UnknownIsOldest(t *testing.T) {
	require.Equal(t, -1, Unknown().Compare(Resolved(time.Unix(0, 0))))
	require.Equal(t, 1, Resolved(time.Unix(0, 0)).Compare(Unknown()))
	require.Equal(t, 0, Unknown().Compare(Unknown()))
	require.Equal(t, -1, Resolved(t1).Compare(Resolved(t2)))
	require.True(t, Resolved(time.Unix(0, 0)).Known(), "epoch zero is a real time")
}
