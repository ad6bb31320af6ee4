package dmg

import (
	"bytes"
	"testing"
)

func TestNewMachineRunsUntilFault(t *testing.T) {
	rom := make([]byte, romSize)
	// NOP, NOP, HALT — HALT is modeled as a fatal fault (see opcodes.go).
	rom[0x0100] = 0x00
	rom[0x0101] = 0x00
	rom[0x0102] = 0x76

	m, err := NewMachine(bytes.NewReader(rom), nil, nil)
	if err != nil {
		t.Fatalf("NewMachine() error = %v", err)
	}

	steps, err := m.Run(10)
	if err == nil {
		t.Fatal("Run() error = nil, want a fault from HALT")
	}
	if steps != 2 {
		t.Errorf("steps = %d, want 2 (the two NOPs that completed before HALT faulted)", steps)
	}
	if _, ok := err.(*Fault); !ok {
		t.Errorf("err = %T, want *Fault", err)
	}
}

func TestNewMachineStopsAtMaxSteps(t *testing.T) {
	rom := make([]byte, romSize)
	for i := 0x0100; i < 0x0100+10; i++ {
		rom[i] = 0x00 // NOP
	}

	m, err := NewMachine(bytes.NewReader(rom), nil, nil)
	if err != nil {
		t.Fatalf("NewMachine() error = %v", err)
	}

	steps, err := m.Run(5)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if steps != 5 {
		t.Errorf("steps = %d, want 5", steps)
	}
	if m.PC() != 0x0105 {
		t.Errorf("PC() = %#04x, want 0x0105", m.PC())
	}
}

func TestMachineTraceWritesOneLinePerStep(t *testing.T) {
	rom := make([]byte, romSize)
	rom[0x0100] = 0x00
	rom[0x0101] = 0x00

	var trace bytes.Buffer
	m, err := NewMachine(bytes.NewReader(rom), nil, &trace)
	if err != nil {
		t.Fatalf("NewMachine() error = %v", err)
	}

	if _, err := m.Run(2); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := bytes.Count(trace.Bytes(), []byte("\n"))
	if lines != 2 {
		t.Errorf("trace lines = %d, want 2", lines)
	}
}
