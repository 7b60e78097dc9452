package recommend

// Exported for tests.
var (
	Cosine       = cosine
	CosineMatrix = cosineMatrix
	Neighbors    = neighbors
)
