package parser

// nodeGuard bounds total content-node production. It is ticked at the
// start of each node creation; the first tick past limit emits exactly one
// warning and the guard remembers it has already fired.
type nodeGuard struct {
	limit    int
	count    int
	exceeded bool
}

// tick returns true if creation may proceed. It returns false once the
// guard has exceeded its limit, forever after.
func (g *nodeGuard) tick() bool {
	if g.exceeded {
		return false
	}
	g.count++
	if g.count > g.limit {
		g.exceeded = true
		return false
	}
	return true
}

// depthGuard bounds nesting depth within a single top-level container. It
// is reset at the start of every top-level node.
type depthGuard struct {
	limit    int
	count    int
	exceeded bool
}

func (g *depthGuard) reset() {
	g.count = 0
	g.exceeded = false
}

// enter returns true if a box container may open at the next depth level.
func (g *depthGuard) enter() bool {
	if g.exceeded {
		return false
	}
	g.count++
	if g.count > g.limit {
		g.exceeded = true
		return false
	}
	return true
}

func (g *depthGuard) leave() {
	if g.count > 0 {
		g.count--
	}
}
