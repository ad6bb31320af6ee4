package dmg

import (
	"fmt"
	"io"
)

// Machine is the top-level assembly of cartridge, bus, and CPU, the way the
// teacher's Console owns cartridge/ram/cpu/bus (nes/console.go). Unlike the
// teacher it has no PPU/APU/controllers: those are GUI/audio concerns the
// spec's Non-goals explicitly exclude.
type Machine struct {
	cart *cartridge
	io   *ioBank
	bus  *bus
	cpu  *CPU
}

// NewMachine loads rom and wires up a reset CPU. serialOut receives bytes
// written through the serial port (SB/SC), and trace, if non-nil, receives
// one line per executed instruction.
func NewMachine(rom io.Reader, serialOut io.Writer, trace io.Writer) (*Machine, error) {
	cart, err := loadCartridge(rom)
	if err != nil {
		return nil, fmt.Errorf("gbcore: load rom: %w", err)
	}

	iob := newIOBank(serialOut)
	b := newBus(cart, iob)
	cpu := newCPU(b, trace)
	cpu.reset()

	return &Machine{cart: cart, io: iob, bus: b, cpu: cpu}, nil
}

// Step runs exactly one instruction (after the interrupt-dispatch check),
// converting any *Fault raised deep in the call stack into a returned
// error — see errors.go for why faults panic instead of propagating as
// normal error returns.
func (m *Machine) Step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Fault)
			if !ok {
				panic(r)
			}
			err = f
		}
	}()

	m.cpu.step()
	return nil
}

// Run steps the machine up to maxSteps times, stopping early on the first
// Fault. It reports how many steps actually completed.
func (m *Machine) Run(maxSteps int) (steps int, err error) {
	for steps = 0; steps < maxSteps; steps++ {
		if err := m.Step(); err != nil {
			return steps, err
		}
	}
	return steps, nil
}

// PC reports the current program counter, for callers that want to observe
// progress (tests, the CLI's completion message) without reaching into the
// CPU.
func (m *Machine) PC() uint16 { return m.cpu.pc }
