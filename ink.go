package inkstack

// mul8 is one translucent ink pass over a base channel: floor(a*c/255).
func mul8(a, c uint8) uint8 {
	return uint8(uint16(a) * uint16(c) / 255)
}

// InkTable precomputes one display color per tonal band. Band b stands
// for len(inks)-b inks applied over paper: band 0 carries every ink,
// the last band is bare paper.
//
// Under BlendMultiply the inks compound lightest-first over the paper
// color, modeling translucent layers. Under BlendOpaque only the darkest
// applied ink shows. The returned slice is built once per render and
// never mutated; rebuild it whenever paper, inks, or the policy change.
func InkTable(paper RGB, inks []RGB, policy BlendPolicy) []RGB {
	bands := len(inks) + 1
	table := make([]RGB, bands)
	for b := range bands {
		applied := bands - 1 - b
		if policy == BlendOpaque {
			if applied == 0 {
				table[b] = paper
			} else {
				table[b] = inks[applied-1]
			}
			continue
		}
		c := paper
		for i := range applied {
			ink := inks[i]
			c = RGB{mul8(c.R, ink.R), mul8(c.G, ink.G), mul8(c.B, ink.B)}
		}
		table[b] = c
	}
	return table
}
