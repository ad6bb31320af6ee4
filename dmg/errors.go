package dmg

import "fmt"

// Fault is the single error type the core ever raises. Every fatal
// condition the core detects (unmapped access, ROM write, unsupported
// opcode, HALT) panics with a *Fault instead of calling os.Exit directly,
// so Machine.Step (or a test) can recover it and hand it back as an error
// for cmd/gbcore to print and turn into an exit code. Reads inside the
// I/O register bank never fault: every offset 0xFF00-0xFF7F returns its
// stored byte.
type Fault struct {
	Reason  string
	Address uint16
	HasAddr bool
	Opcode  byte
	HasOp   bool
}

func (f *Fault) Error() string {
	switch {
	case f.HasOp && f.HasAddr:
		return fmt.Sprintf("gbcore: %s: opcode 0x%02X at 0x%04X", f.Reason, f.Opcode, f.Address)
	case f.HasOp:
		return fmt.Sprintf("gbcore: %s: opcode 0x%02X", f.Reason, f.Opcode)
	case f.HasAddr:
		return fmt.Sprintf("gbcore: %s: 0x%04X", f.Reason, f.Address)
	default:
		return "gbcore: " + f.Reason
	}
}

func faultAddr(reason string, addr uint16) {
	panic(&Fault{Reason: reason, Address: addr, HasAddr: true})
}

func faultOp(reason string, op byte, pc uint16) {
	panic(&Fault{Reason: reason, Opcode: op, HasOp: true, Address: pc, HasAddr: true})
}
