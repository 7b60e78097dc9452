package recommend

import "math"

// cosine returns the cosine similarity of two equal-length vectors.
// A zero-norm vector is similar to nothing, including itself; this
// keeps NaN out of the similarity matrices.
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// cosineMatrix computes the full pairwise similarity matrix over the
// given vectors. O(n²·d); fine for the tens-to-hundreds of entities
// this dataset holds.
func cosineMatrix(vectors [][]float64) [][]float64 {
	n := len(vectors)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		sim[i][i] = cosine(vectors[i], vectors[i])
		for j := i + 1; j < n; j++ {
			v := cosine(vectors[i], vectors[j])
			sim[i][j] = v
			sim[j][i] = v
		}
	}
	return sim
}
