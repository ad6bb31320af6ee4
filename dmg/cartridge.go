package dmg

import "io"

// romSize is the flat, unbanked cartridge ROM window the bus maps at
// 0x0000-0x7FFF. Bank-switched (MBC) cartridges are out of scope per the
// spec; larger images are truncated rather than refused.
const romSize = 0x8000

// cartridge owns the ROM byte slice exclusively, mirroring the teacher's
// cartridge.prg ownership in nes/cartridge.go. Unlike the teacher's iNES
// loader there is no header to parse: the image is copied verbatim.
type cartridge struct {
	rom [romSize]byte
}

// loadCartridge reads a flat ROM image and copies it into the fixed
// 0x0000-0x7FFF window, truncating longer images and zero-padding shorter
// ones (per spec.md §6, bank-switched/oversized cartridges may be
// truncated rather than refused).
func loadCartridge(r io.Reader) (*cartridge, error) {
	c := &cartridge{}
	buf := make([]byte, romSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	copy(c.rom[:], buf[:n])
	return c, nil
}

func (c *cartridge) read(addr uint16) byte {
	return c.rom[addr]
}

func (c *cartridge) write(addr uint16, value byte) {
	faultAddr("write to read-only ROM", addr)
}
