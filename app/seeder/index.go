package seeder

// Index maps the slugs created by one stage to their generated IDs. Stages
// return an Index and later stages receive it as an argument; nothing is
// looked up in the store again.
type Index struct {
	kind  string
	ids   map[string]uint
	slugs []string
}

func newIndex(kind string) *Index {
	return &Index{
		kind: kind,
		ids:  make(map[string]uint),
	}
}

func (ix *Index) add(slug string, id uint) {
	if _, ok := ix.ids[slug]; !ok {
		ix.slugs = append(ix.slugs, slug)
	}
	ix.ids[slug] = id
}

// Resolve returns the ID created for slug or a *MissingReferenceError.
func (ix *Index) Resolve(slug string) (uint, error) {
	id, ok := ix.ids[slug]
	if !ok {
		return 0, &MissingReferenceError{Kind: ix.kind, Slug: slug}
	}
	return id, nil
}

// ResolveAll resolves every slug or none: the first miss is returned.
func (ix *Index) ResolveAll(slugs []string) ([]uint, error) {
	ids := make([]uint, 0, len(slugs))
	for _, slug := range slugs {
		id, err := ix.Resolve(slug)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// First returns the ID of the first slug added.
func (ix *Index) First() (uint, bool) {
	if len(ix.slugs) == 0 {
		return 0, false
	}
	return ix.ids[ix.slugs[0]], true
}

func (ix *Index) Len() int {
	return len(ix.slugs)
}

// Slugs returns the slugs in creation order.
func (ix *Index) Slugs() []string {
	return append([]string(nil), ix.slugs...)
}
