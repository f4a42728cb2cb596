package champion

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Wukong", "wukong"},
		{"WÜKONG", "wukong"},
		{"Kai'Sa", "kaisa"},
		{"Nunu & Willump", "nunuwillump"},
		{"Dr. Mundo", "drmundo"},
		{"Bel'Veth", "belveth"},
		{"  LeBlanc  ", "leblanc"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestResolveToleratesCaseAccentsAndAliases(t *testing.T) {
	d := NewDirectory(nil, zap.NewNop()) // built-in fallback table

	want, ok := d.Resolve("Wukong")
	require.True(t, ok)

	for _, spelling := range []string{"wukong", "WÜKONG", "MonkeyKing", "monkey king"} {
		got, ok := d.Resolve(spelling)
		require.True(t, ok, "spelling %q did not resolve", spelling)
		assert.Equal(t, want, got, "spelling %q resolved to a different id", spelling)
	}
}

func TestResolveNumericPassthrough(t *testing.T) {
	d := NewDirectory(nil, zap.NewNop())

	id, ok := d.Resolve("266")
	require.True(t, ok)
	assert.Equal(t, 266, id)
}

func TestResolveUnknown(t *testing.T) {
	d := NewDirectory(nil, zap.NewNop())

	_, ok := d.Resolve("definitelynotachampion")
	assert.False(t, ok)
	_, ok = d.Resolve("")
	assert.False(t, ok)
}

func TestNameFromID(t *testing.T) {
	d := NewDirectory(nil, zap.NewNop())

	name, ok := d.NameFromID(62)
	require.True(t, ok)
	assert.Equal(t, "Wukong", name)

	_, ok = d.NameFromID(99999)
	assert.False(t, ok)
}

func TestCacheRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "champions.db")
	cache, err := OpenCache(path)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	records := []Record{
		{ID: 266, Name: "Aatrox", Slug: "Aatrox", SearchKey: "aatrox"},
		{ID: 62, Name: "Wukong", Slug: "MonkeyKing", SearchKey: "wukong"},
	}
	require.NoError(t, cache.Store(ctx, "15.1.1", records))

	version, err := cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "15.1.1", version)

	got, err := cache.Records(ctx, "15.1.1")
	require.NoError(t, err)
	assert.ElementsMatch(t, records, got)

	// Version mismatch yields nothing.
	miss, err := cache.Records(ctx, "15.2.1")
	require.NoError(t, err)
	assert.Empty(t, miss)

	// Store replaces, not appends.
	require.NoError(t, cache.Store(ctx, "15.2.1", records[:1]))
	got, _, err = cache.LatestRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSpellID(t *testing.T) {
	assert.Equal(t, 4, SpellID("Flash", SpellHeal))
	assert.Equal(t, 14, SpellID("ignite", SpellFlash))
	assert.Equal(t, SpellFlash, SpellID("notaspell", SpellFlash))
}
