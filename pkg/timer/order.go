package timer

// SortByCallOrder converts a depth-annotated completion log into display
// order: a permutation of record indices where every region is immediately
// followed by its descendants and siblings keep their arrival order.
//
// Records arrive in completion order, so a region's children sit in the log
// directly before the region itself. The pass over each level collects those
// deeper records into a pending buffer; the next record at the current level
// is their parent, and the recursively ordered buffer is spliced in right
// after it.
//
// Depth sequences must come from a well-nested Timer session. Sequences that
// skip levels are not validated; stray deep records attach to the nearest
// shallower marker, and trailing records with no parent at the current level
// are dropped.
func SortByCallOrder(depths []int) []int {
	ids := make([]int, len(depths))
	for i := range ids {
		ids[i] = i
	}
	return sortLevel(depths, ids, 0)
}

func sortLevel(depths, ids []int, level int) []int {
	sorted := make([]int, 0, len(ids))
	var subDepths, subIDs []int
	for i, d := range depths {
		if d == level {
			sorted = append(sorted, ids[i])
			if len(subIDs) > 0 {
				sorted = append(sorted, sortLevel(subDepths, subIDs, level+1)...)
				subDepths, subIDs = nil, nil
			}
		} else {
			subDepths = append(subDepths, d)
			subIDs = append(subIDs, ids[i])
		}
	}
	return sorted
}
