package core_test

// sliceCloner deep-copies a []float64 genome, exercising the GenomeCloner
// contract the way mutate.RootClone relies on it in production.
type sliceCloner struct{}

func (sliceCloner) DeepCopy(genome any) any {
	src, ok := genome.([]float64)
	if !ok {
		return genome
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}
