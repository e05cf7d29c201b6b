package importer

import (
	"clinic-registry/internal/repositories"
	"clinic-registry/pkg/utils"
)

// NameIndex maps normalized entity names to ids. It is built from one bulk
// read of the target table per sheet, so resolution costs O(existing rows)
// reads regardless of how many rows are being imported.
type NameIndex struct {
	ids       map[string]uint64
	ambiguous map[string]struct{}
}

func BuildNameIndex(refs []repositories.NameRef) NameIndex {
	ix := NameIndex{
		ids:       make(map[string]uint64, len(refs)),
		ambiguous: make(map[string]struct{}),
	}
	for _, ref := range refs {
		name := utils.NormalizeName(ref.Name)
		if _, seen := ix.ids[name]; seen {
			ix.ambiguous[name] = struct{}{}
			continue
		}
		ix.ids[name] = ref.ID
	}
	return ix
}

// Lookup resolves a reference text to exactly one id. Zero or multiple
// matches report no match.
func (ix NameIndex) Lookup(text string) (uint64, bool) {
	name := utils.NormalizeName(text)
	if _, dup := ix.ambiguous[name]; dup {
		return 0, false
	}
	id, ok := ix.ids[name]
	return id, ok
}

// Contains reports whether the normalized name exists in the index at all,
// ambiguous or not. Used for the duplicate-name skip during batch prepare.
func (ix NameIndex) Contains(text string) bool {
	name := utils.NormalizeName(text)
	if _, dup := ix.ambiguous[name]; dup {
		return true
	}
	_, ok := ix.ids[name]
	return ok
}

// ResolveColumn replaces the textual reference column with resolved ids,
// returned as a slice parallel to rows (nil where the reference is absent or
// did not resolve to exactly one id). Unresolved references are not errors:
// the row imports with the foreign key left unset.
func ResolveColumn(rows []Row, sourceKey string, ix NameIndex) []*uint64 {
	resolved := make([]*uint64, len(rows))
	for i, row := range rows {
		text, ok := row[sourceKey]
		if !ok {
			continue
		}
		delete(row, sourceKey)
		if id, found := ix.Lookup(text); found {
			resolved[i] = &id
		}
	}
	return resolved
}
