package sim

// collide checks every projectile against every target. A projectile hits
// at most one target per frame: the first overlap in target order wins,
// the projectile is consumed and the target stays in play.
func (e *Engine) collide() {
	pc := e.cfg.Particles

	alive := e.projectiles[:0]
	for i := range e.projectiles {
		p := e.projectiles[i]
		hit := false
		for j := range e.targets {
			t := &e.targets[j]
			if !p.Overlaps(t.Body) {
				continue
			}
			e.particles.Emit(t.Pos, pc.Burst, pc.Color)
			e.logger.Info("link activated", "tag", t.Tag, "url", t.URL)
			if e.opts.Links != nil {
				e.opts.Links.OpenLink(t.Tag, t.URL)
			}
			hit = true
			break
		}
		if !hit {
			alive = append(alive, p)
		}
	}
	e.projectiles = alive
}
