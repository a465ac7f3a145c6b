package ecs

// intersect returns entities present in every set, in the order of the first.
func intersect(sets ...*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	for _, s := range sets {
		if s == nil || s.Len() == 0 {
			return nil
		}
	}
	base := sets[0].Entities()
	out := base[:0]
	for _, e := range base {
		keep := true
		for _, s := range sets[1:] {
			if !s.Has(e) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, e)
		}
	}
	return out
}
