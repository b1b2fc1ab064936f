package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bdphone/pkg/i18n"
)

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("loads json and yaml catalogs", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"locales/en.json":   {Data: []byte(`{"hello": "Hello"}`)},
			"locales/bn.yaml":   {Data: []byte("hello: হ্যালো\n")},
			"locales/notes.txt": {Data: []byte("ignored")},
		}

		adapter := i18n.NewFSAdapter(fsys, "locales", i18n.NewJSONParser(), i18n.NewYAMLParser())
		require.NotNil(t, adapter)

		catalogs, err := adapter.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, catalogs, 2)
		assert.Equal(t, "Hello", catalogs["en"]["hello"])
		assert.Equal(t, "হ্যালো", catalogs["bn"]["hello"])
	})

	t.Run("invalid json surfaces parse error", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.json": {Data: []byte(`{"hello":`)},
		}

		adapter := i18n.NewFSAdapter(fsys, ".", i18n.NewJSONParser())
		_, err := adapter.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrParseCatalog)
	})

	t.Run("cancelled context stops loading", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.json": {Data: []byte(`{"hello": "Hello"}`)},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		adapter := i18n.NewFSAdapter(fsys, ".", i18n.NewJSONParser())
		_, err := adapter.Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadCancelled)
	})

	t.Run("nil fs or no parsers", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i18n.NewFSAdapter(nil, ".", i18n.NewJSONParser()))
		assert.Nil(t, i18n.NewFSAdapter(fstest.MapFS{}, "."))
	})
}

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	t.Run("nil data yields empty catalogs", func(t *testing.T) {
		t.Parallel()
		catalogs, err := (&i18n.MapAdapter{}).Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, catalogs)
	})
}
