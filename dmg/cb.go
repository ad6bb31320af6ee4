package dmg

// executeCB dispatches the 0xCB-prefixed page. The whole page is one
// regular grid: bits 6-7 select the operation group, bits 3-5 select the
// rotate/shift kind or the bit index, and bits 0-2 select the operand slot
// (the same B,C,D,E,H,L,(HL),A mapping as the unprefixed page). spec.md §9
// calls this page out explicitly as exploitable regularity, so it is
// computed in full rather than listed, unlike the unprefixed page's
// irregular blocks.
func (c *CPU) executeCB(op byte) {
	group := op >> 6
	slot := op & 0x7
	n := uint((op >> 3) & 0x7)

	v := c.readSlot(slot)

	switch group {
	case 0: // rotate/shift/swap, selected by n
		var result byte
		switch n {
		case 0:
			result = c.rlc8(v)
		case 1:
			result = c.rrc8(v)
		case 2:
			result = c.rl8(v)
		case 3:
			result = c.rr8(v)
		case 4:
			result = c.sla8(v)
		case 5:
			result = c.sra8(v)
		case 6:
			result = c.swap8(v)
		case 7:
			result = c.srl8(v)
		}
		c.writeSlot(slot, result)

	case 1: // BIT n,slot
		c.bitTest(v, n)

	case 2: // RES n,slot
		c.writeSlot(slot, resBit(v, n))

	case 3: // SET n,slot
		c.writeSlot(slot, setBit(v, n))
	}
}
