package parameter

// Terminal projection of world units
// Terminal cells are roughly twice as tall as wide, so x gets two cells per unit
const (
	// CellsPerUnitX is horizontal cells per world unit
	CellsPerUnitX = 2.0

	// CellsPerUnitY is vertical cells per world unit
	CellsPerUnitY = 1.0
)
