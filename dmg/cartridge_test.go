package dmg

import (
	"bytes"
	"testing"
)

func TestLoadCartridgeExactSize(t *testing.T) {
	rom := bytes.Repeat([]byte{0xAB}, romSize)
	c, err := loadCartridge(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("loadCartridge() error = %v", err)
	}
	if got := c.read(0); got != 0xAB {
		t.Errorf("read(0) = %#02x, want 0xAB", got)
	}
	if got := c.read(romSize - 1); got != 0xAB {
		t.Errorf("read(romSize-1) = %#02x, want 0xAB", got)
	}
}

func TestLoadCartridgeShorterIsZeroPadded(t *testing.T) {
	rom := []byte{0x01, 0x02, 0x03}
	c, err := loadCartridge(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("loadCartridge() error = %v", err)
	}
	if got := c.read(0); got != 0x01 {
		t.Errorf("read(0) = %#02x, want 0x01", got)
	}
	if got := c.read(3); got != 0x00 {
		t.Errorf("read(3) = %#02x, want 0x00 (zero-padded)", got)
	}
}

func TestLoadCartridgeLongerIsTruncated(t *testing.T) {
	rom := bytes.Repeat([]byte{0x5A}, romSize+0x100)
	c, err := loadCartridge(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("loadCartridge() error = %v", err)
	}
	if got := c.read(romSize - 1); got != 0x5A {
		t.Errorf("read(romSize-1) = %#02x, want 0x5A", got)
	}
}

func TestCartridgeWriteFaults(t *testing.T) {
	c := &cartridge{}
	defer func() {
		if recover() == nil {
			t.Fatal("write to cartridge did not panic")
		}
	}()
	c.write(0x1234, 0xFF)
}
