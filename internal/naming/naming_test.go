package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
		wantErr  bool
	}{
		{"tar.gz", "foo-1.2.3.tar.gz", "foo-1.2.3", false},
		{"tar.bz2", "foo-1.2.3.tar.bz2", "foo-1.2.3", false},
		{"orig tar.gz before tar.gz", "foo_1.2.orig.tar.gz", "foo_1.2", false},
		{"orig tar.bz2", "foo_1.2.orig.tar.bz2", "foo_1.2", false},
		{"zip", "bar-2011-03-04.zip", "bar-2011-03-04", false},
		{"tgz", "baz-r1123.tgz", "baz-r1123", false},
		{"tbz", "baz-r1123.tbz", "baz-r1123", false},
		{"unknown extension", "weirdfile.dat", "", true},
		{"bare extension", ".tar.gz", "", true},
		{"no extension", "README", "", true},
		{"extension not at end", "foo.tar.gz.part", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StripExtension(tt.filename)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoExtensionMatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchVersion(t *testing.T) {
	tests := []struct {
		name     string
		stem     string
		wantPkg  string
		wantRule string
		wantVer  Ordinal
	}{
		// Rule 1: four components
		{"four components", "foo-1.2.3.4", "foo", "1.2.3.4", PackOrdinal(1, 2, 3, 4)},
		{"four components underscore", "foo_10.0.0.1", "foo", "1.2.3.4", PackOrdinal(10, 0, 0, 1)},

		// Rule 2: dates
		{"dashed date", "bar-2011-03-04", "bar", "YYYY-MM-DD", PackOrdinal(2011, 3, 4, 0)},
		{"compact date", "bar-20110304", "bar", "YYYY-MM-DD", PackOrdinal(2011, 3, 4, 0)},
		{"not a calendar date falls to revision", "bar-20111399", "bar", "r1234", PackOrdinal(20111399, 0, 0, 0)},

		// Rule 3: three components with optional patch letter
		{"three components", "foo-1.2.3", "foo", "1.2.3a", PackOrdinal(1, 2, 3, 0)},
		{"three components patch", "foo-1.2.3d", "foo", "1.2.3a", PackOrdinal(1, 2, 3, 'd')},
		{"dashed name", "foo-bar-0.9.12", "foo-bar", "1.2.3a", PackOrdinal(0, 9, 12, 0)},

		// Rule 4: two components with optional patch letter
		{"two components", "linux-3.2", "linux", "1.2a", PackOrdinal(3, 2, 0, 0)},
		{"two components patch", "openssl-0.9b", "openssl", "1.2a", PackOrdinal(0, 9, 0, 'b')},

		// Rule 5: revision
		{"revision with r", "baz-r1123", "baz", "r1234", PackOrdinal(1123, 0, 0, 0)},
		{"revision bare", "baz-77", "baz", "r1234", PackOrdinal(77, 0, 0, 0)},

		// Greedy name binding
		{"last dotted run is version", "foo-1.2-1.3.0", "foo-1.2", "1.2.3a", PackOrdinal(1, 3, 0, 0)},
		{"digits in name", "python2-2.7", "python2", "1.2a", PackOrdinal(2, 7, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := MatchVersion(tt.stem)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPkg, m.Package)
			assert.Equal(t, tt.wantRule, m.Rule)
			assert.Equal(t, tt.wantVer, m.Version, "got %s want %s", m.Version, tt.wantVer)
		})
	}
}

func TestMatchVersion_NoMatch(t *testing.T) {
	for _, stem := range []string{
		"weirdfile",
		"foo",
		"1.2.3",
		"foo-1.2.3-beta",
		"foo-bar",
		"foo-1.70000",
		"foo-1.2.3.65536",
		"foo-99999999999999999999",
	} {
		t.Run(stem, func(t *testing.T) {
			_, err := MatchVersion(stem)
			assert.ErrorIs(t, err, ErrNoVersionMatch)
		})
	}
}

func TestParse(t *testing.T) {
	e, err := Parse("/dl", "foo-1.2.3.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "/dl", e.Dir())
	assert.Equal(t, "foo-1.2.3.tar.gz", e.Filename())
	assert.Equal(t, "foo", e.Package())
	assert.Equal(t, PackOrdinal(1, 2, 3, 0), e.Version())
	assert.Equal(t, "1.2.3a", e.Rule())
	assert.Equal(t, "/dl/foo-1.2.3.tar.gz", e.Path())

	_, err = Parse("/dl", "weirdfile.dat")
	assert.ErrorIs(t, err, ErrNoExtensionMatch)

	_, err = Parse("/dl", "notes.zip")
	assert.ErrorIs(t, err, ErrNoVersionMatch)
}

func TestParse_OrigTarball(t *testing.T) {
	e, err := Parse("dl", "foo_1.2.orig.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "foo", e.Package())
	assert.Equal(t, PackOrdinal(1, 2, 0, 0), e.Version())
}

func TestEntryEqual(t *testing.T) {
	a, err := Parse("a", "foo-1.0.zip")
	require.NoError(t, err)
	b, err := Parse("b", "foo-1.0.zip")
	require.NoError(t, err)
	c, err := Parse("a", "foo-1.0.tgz")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, 0, a.Version().Compare(c.Version()))
}

func TestOrdinal_RoundTrip(t *testing.T) {
	cases := [][4]uint64{
		{0, 0, 0, 0},
		{1, 2, 3, 4},
		{65535, 65535, 65535, 65535},
		{2011, 12, 31, 0},
		{1 << 40, 7, 0, 65535},
	}
	for _, c := range cases {
		o := PackOrdinal(c[0], uint16(c[1]), uint16(c[2]), uint16(c[3]))
		c1, c2, c3, c4 := o.Components()
		assert.Equal(t, c, [4]uint64{c1, uint64(c2), uint64(c3), uint64(c4)})
	}
}

func TestOrdinal_RoundTripThroughFilename(t *testing.T) {
	e, err := Parse("dl", "pkg-name_65535.0.12.345.tar.bz2")
	require.NoError(t, err)
	assert.Equal(t, "pkg-name", e.Package())
	c1, c2, c3, c4 := e.Version().Components()
	assert.Equal(t, uint64(65535), c1)
	assert.Equal(t, []uint16{0, 12, 345}, []uint16{c2, c3, c4})
}

func TestOrdinal_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"major wins", "foo-2.0.0", "foo-1.99.99", 1},
		{"minor", "foo-1.3.0", "foo-1.2.3", 1},
		{"patch letter beats none", "foo-1.2.3a", "foo-1.2.3", 1},
		{"patch letters by code", "foo-1.2.3a", "foo-1.2.3b", -1},
		{"revision", "bar-r5", "bar-r10", -1},
		{"dates", "bar-2011-03-04", "bar-20110305", -1},
		{"equal", "foo-1.2", "foo_1.2", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := MatchVersion(tt.a)
			require.NoError(t, err)
			b, err := MatchVersion(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Version.Compare(b.Version))
			assert.Equal(t, -tt.want, b.Version.Compare(a.Version))
		})
	}
}

func TestOrdinal_PatchLetterSharesFourthField(t *testing.T) {
	four, err := MatchVersion("foo-1.2.3.100")
	require.NoError(t, err)
	letter, err := MatchVersion("foo-1.2.3d")
	require.NoError(t, err)
	assert.Equal(t, 0, four.Version.Compare(letter.Version))
}

func TestOrdinal_Int(t *testing.T) {
	o := PackOrdinal(1, 2, 3, 4)
	assert.Equal(t, "18446744073709551616", PackOrdinal(1, 0, 0, 0).Int().String())
	want := "18447307036548136960" // 1<<64 | 2<<48 | 3<<32 | 4<<16
	assert.Equal(t, want, o.Int().String())
	assert.Equal(t, "1.2.3.4", o.String())
}
