package generation

// CaveSource defines what the viewer and the server need from a generator.
// Systems depend on this rather than on CaveGenerator so tests can supply fixed caves.
type CaveSource interface {
	Generate() (*Cave, error)
	SetSeed(seed string)
	UseRandomSeed()
}

var _ CaveSource = (*CaveGenerator)(nil)
