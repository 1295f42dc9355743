package ndn_test

import (
	"testing"

	"github.com/ndnlite/ndnlite/ndn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentCanonicalOrder(t *testing.T) {
	a := ndn.Component("aa")
	b := ndn.Component("b")
	c := ndn.Component("b")

	// shorter < longer regardless of content
	assert.Negative(t, ndn.CompareComponents(b, a))
	assert.Positive(t, ndn.CompareComponents(a, b))
	assert.Zero(t, ndn.CompareComponents(b, c))

	// total order antisymmetry over same-length components
	x, y := ndn.Component("ab"), ndn.Component("ac")
	assert.Equal(t, ndn.CompareComponents(x, y), -ndn.CompareComponents(y, x))
}

func TestNameCompareTotalOrder(t *testing.T) {
	n1, _ := ndn.NameFromURI("/a/b")
	n2, _ := ndn.NameFromURI("/a/b/c")
	n3, _ := ndn.NameFromURI("/a/c")

	assert.Equal(t, -1, n1.Compare(n2)) // prefix is less
	assert.Equal(t, 1, n2.Compare(n1))
	assert.Less(t, n2.Compare(n3), 0) // "/a/b/c" < "/a/c" (b<c at component 2)
}

func TestPrefixRelation(t *testing.T) {
	empty := ndn.Name{}
	ab, _ := ndn.NameFromURI("/a/b")
	assert.True(t, empty.IsPrefixOf(ab))

	abc, _ := ndn.NameFromURI("/a/b/c")
	assert.Equal(t, ndn.RelAPrefixOfB, ndn.PrefixRelation(ab, abc))
	assert.Equal(t, ndn.RelBPrefixOfA, ndn.PrefixRelation(abc, ab))
	assert.Equal(t, ndn.RelEqual, ndn.PrefixRelation(ab, ab))

	xy, _ := ndn.NameFromURI("/x/y")
	assert.Equal(t, ndn.RelIncomparable, ndn.PrefixRelation(ab, xy))
}

func TestNameEncodeEmptyName(t *testing.T) {
	empty := ndn.Name{}
	assert.Equal(t, []byte{0x07, 0x00}, empty.Bytes())
}

func TestNameEncodeDecodeRoundTrip(t *testing.T) {
	n, err := ndn.NameFromURI("/a/b/cd/ef")
	require.NoError(t, err)

	encoded := n.Bytes()
	decoded, err := ndn.ParseNameFromBlock(encoded)
	require.NoError(t, err)
	assert.True(t, n.Equal(decoded))
}

func TestNameFromURIS1Fixture(t *testing.T) {
	n, err := ndn.NameFromURI("/a/b/cd/ef")
	require.NoError(t, err)
	got := n.Bytes()
	want := []byte{
		0x07, 0x0E,
		0x08, 0x01, 'a',
		0x08, 0x01, 'b',
		0x08, 0x02, 'c', 'd',
		0x08, 0x02, 'e', 'f',
	}
	assert.Equal(t, want, got)
}

func TestParseNameRejectsBadSubtype(t *testing.T) {
	bad := []byte{0x07, 0x02, 0x09, 0x00} // inner type 9, not a NameComponent(8)
	_, err := ndn.ParseNameFromBlock(bad)
	require.Error(t, err)
}

func TestNameFromURIRejects(t *testing.T) {
	_, err := ndn.NameFromURI("a/b")
	require.Error(t, err, "missing leading slash")

	_, err = ndn.NameFromURI("/a//b")
	require.Error(t, err, "empty segment forbidden")

	_, err = ndn.NameFromURI("/a%")
	require.Error(t, err, "truncated percent escape")

	_, err = ndn.NameFromURI("/a%zz")
	require.Error(t, err, "non-hex percent escape")
}

func TestNameFromURIRootAndTrailingSlash(t *testing.T) {
	root, err := ndn.NameFromURI("/")
	require.NoError(t, err)
	assert.Equal(t, 0, len(root))

	withTrailing, err := ndn.NameFromURI("/a/b/")
	require.NoError(t, err)
	noTrailing, err := ndn.NameFromURI("/a/b")
	require.NoError(t, err)
	assert.True(t, withTrailing.Equal(noTrailing))
}

func TestNameHashConsistentWithEquality(t *testing.T) {
	a, _ := ndn.NameFromURI("/p/q")
	b, _ := ndn.NameFromURI("/p/q")
	c, _ := ndn.NameFromURI("/p/r")

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}
