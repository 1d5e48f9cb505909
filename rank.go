package postfix

// Rank sorts a batch of expressions by ascending value in place and returns
// it. Expressions with equal values keep their input order. NaN is never less
// than any value.
//
// Rank is a selection sort, which is fine for batches read from a file.
func Rank(batch []*Expr) []*Expr {
	for i := range batch {
		if k := lowest(batch, i); k > i {
			// Swapping can move batch[i] behind an equal element, so shift
			// instead.
			e := batch[k]
			copy(batch[i+1:k+1], batch[i:k])
			batch[i] = e
		}
	}
	return batch
}

// lowest finds the index of the first least value in batch[start:].
func lowest(batch []*Expr, start int) int {
	k := start
	for i := start + 1; i < len(batch); i++ {
		if batch[i].Value < batch[k].Value {
			k = i
		}
	}
	return k
}
