package geom

// Arena tracks intermediate paths produced during one operation batch
// (typically a single badge pass) and releases them in one call. It
// replaces the per-path bookkeeping that pairwise boolean reductions
// would otherwise need.
type Arena struct {
	paths []*Path
}

// Track registers p for release and returns it unchanged, so calls can
// be chained around operation results.
func (a *Arena) Track(p *Path) *Path {
	if p != nil {
		a.paths = append(a.paths, p)
	}
	return p
}

// Release returns every tracked path to the pool.
func (a *Arena) Release() {
	for _, p := range a.paths {
		p.Release()
	}
	a.paths = a.paths[:0]
}
