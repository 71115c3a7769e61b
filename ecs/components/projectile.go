package components

// Projectile stores ballistic shot state. Active is false exactly when the
// projectile is pending removal by the arena's compaction pass.
type Projectile struct {
	Radius float64
	Active bool
}
