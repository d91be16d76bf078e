package core

// Preset is a named example matrix with a human-readable description,
// used to populate the UI. Presets are served verbatim; no computation
// is attached to them.
type Preset struct {
	Name        string `json:"name"`
	Matrix      Matrix `json:"matrix"`
	Description string `json:"description"`
}

// presetCatalog is the process-wide constant preset table, keyed by
// dimension ("2d", "3d"). Initialized once at startup and never mutated.
var presetCatalog = map[string][]Preset{
	"2d": {
		{
			Name:        "Identity Matrix",
			Matrix:      Matrix{{1, 0}, {0, 1}},
			Description: "All vectors are eigenvectors with eigenvalue 1",
		},
		{
			Name:        "Scaling Matrix",
			Matrix:      Matrix{{2, 0}, {0, 3}},
			Description: "Diagonal matrix with eigenvalues 2 and 3",
		},
		{
			Name:        "Reflection Matrix",
			Matrix:      Matrix{{1, 0}, {0, -1}},
			Description: "Reflects across x-axis, eigenvalues 1 and -1",
		},
		{
			Name:        "Rotation Matrix (90°)",
			Matrix:      Matrix{{0, -1}, {1, 0}},
			Description: "Pure rotation, complex eigenvalues",
		},
		{
			Name:        "Shear Matrix",
			Matrix:      Matrix{{1, 1}, {0, 1}},
			Description: "Shear transformation, repeated eigenvalue 1",
		},
		{
			Name:        "Symmetric Matrix",
			Matrix:      Matrix{{3, 1}, {1, 3}},
			Description: "Real eigenvalues 2 and 4",
		},
	},
	"3d": {
		{
			Name:        "3D Identity",
			Matrix:      Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			Description: "All vectors are eigenvectors",
		},
		{
			Name:        "3D Scaling",
			Matrix:      Matrix{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}},
			Description: "Eigenvalues 2, 3, 4",
		},
		{
			Name:        "Rotation about Z-axis",
			Matrix:      Matrix{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
			Description: "Real eigenvalue 1, complex pair",
		},
	},
}

// Presets returns the static preset matrix catalog. Callers must treat the
// returned table as read-only.
func Presets() map[string][]Preset {
	return presetCatalog
}
