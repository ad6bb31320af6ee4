package dmg

import "fmt"

// traceLine writes one register/flag snapshot per step to c.trace, in the
// same spirit as the teacher's disassemble (nes/disasembler.go): a fixed
// field layout a reader (or a diffing script) can line up column by
// column. Register values are dumped in full rather than decoded into a
// mnemonic, since spec.md's Testable Properties compare state, not text.
func (c *CPU) traceLine() {
	fmt.Fprintf(c.trace,
		"A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X\n",
		c.a, c.f, c.b, c.c, c.d, c.e, c.h, c.l, c.sp, c.pc,
		c.bus.read(c.pc), c.bus.read(c.pc+1), c.bus.read(c.pc+2), c.bus.read(c.pc+3),
	)
}
