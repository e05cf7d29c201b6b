package importer

import (
	"testing"

	"clinic-registry/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameIndexLookup(t *testing.T) {
	ix := BuildNameIndex([]repositories.NameRef{
		{ID: 1, Name: "cardiologia"},
		{ID: 2, Name: "ortopedia"},
	})

	id, ok := ix.Lookup("Cardiologia")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), id)

	id, ok = ix.Lookup("  ORTOPEDIA ")
	assert.True(t, ok)
	assert.Equal(t, uint64(2), id)

	_, ok = ix.Lookup("neurologia")
	assert.False(t, ok)
}

func TestNameIndexAmbiguous(t *testing.T) {
	// Two rows folding onto the same normalized name resolve to neither.
	ix := BuildNameIndex([]repositories.NameRef{
		{ID: 1, Name: "Cardiologia"},
		{ID: 2, Name: "cardiologia "},
	})

	_, ok := ix.Lookup("cardiologia")
	assert.False(t, ok)
	assert.True(t, ix.Contains("cardiologia"))
}

func TestNameIndexOrderIndependent(t *testing.T) {
	refs := []repositories.NameRef{
		{ID: 1, Name: "cardiologia"},
		{ID: 2, Name: "ortopedia"},
		{ID: 3, Name: "neurologia"},
	}
	reversed := []repositories.NameRef{refs[2], refs[1], refs[0]}

	a := BuildNameIndex(refs)
	b := BuildNameIndex(reversed)

	for _, ref := range refs {
		idA, okA := a.Lookup(ref.Name)
		idB, okB := b.Lookup(ref.Name)
		assert.Equal(t, okA, okB)
		assert.Equal(t, idA, idB)
	}
}

func TestResolveColumn(t *testing.T) {
	ix := BuildNameIndex([]repositories.NameRef{
		{ID: 7, Name: "cardiologia"},
	})
	rows := []Row{
		{KeyName: "dr. a", KeySpecialty: "cardiologia"},
		{KeyName: "dr. b", KeySpecialty: "inexistente"},
		{KeyName: "dr. c"},
	}

	resolved := ResolveColumn(rows, KeySpecialty, ix)

	require.Len(t, resolved, 3)
	if assert.NotNil(t, resolved[0]) {
		assert.Equal(t, uint64(7), *resolved[0])
	}
	assert.Nil(t, resolved[1])
	assert.Nil(t, resolved[2])

	// The textual column is consumed either way.
	for _, row := range rows {
		_, present := row[KeySpecialty]
		assert.False(t, present)
	}
}
