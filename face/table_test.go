package face

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableAddLookupRemove(t *testing.T) {
	tbl := NewTable()
	id1, err := tbl.Add(KindLink)
	require.NoError(t, err)
	id2, err := tbl.Add(KindApp)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)

	e1, ok := tbl.Lookup(id1)
	require.True(t, ok)
	require.Equal(t, KindLink, e1.Kind)

	require.Len(t, tbl.Faces(), 2)

	require.True(t, tbl.Remove(id1))
	require.False(t, tbl.Remove(id1))

	_, ok = tbl.Lookup(id1)
	require.False(t, ok)
	require.Len(t, tbl.Faces(), 1)
}

func TestTableAddFailsWhenFull(t *testing.T) {
	tbl := NewTable()
	for i := 0; i < DefaultTableSize; i++ {
		_, err := tbl.Add(KindApp)
		require.NoError(t, err)
	}

	_, err := tbl.Add(KindApp)
	require.ErrorIs(t, err, ErrTableFull)

	// removing a face frees its slot again
	faces := tbl.Faces()
	require.True(t, tbl.Remove(faces[0].ID))
	_, err = tbl.Add(KindApp)
	require.NoError(t, err)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "LINK", KindLink.String())
	require.Equal(t, "APP", KindApp.String())
}
