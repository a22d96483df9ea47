package domain

import (
	citydomain "freight-cost/internal/features/cities/domain"
)

// Snapshot pairs a catalog with the matrix built from it.
type Snapshot struct {
	Catalog     *citydomain.Catalog
	Matrix      *Matrix
	Fingerprint string
}
