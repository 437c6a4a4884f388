package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOnes(t *testing.T) {
	assert.Equal(t, byte(0b111), AllOnes[byte](3))
	assert.Equal(t, byte(0b1), AllOnes[byte](1))
	assert.Equal(t, uint16(0xFFFF), AllOnes[uint16](16))
}

func TestBitViewRead(t *testing.T) {
	// 100010dw with d=0, w=1
	view := CreateBitView(byte(0b10001001))

	assert.Equal(t, byte(0b100010), view.Read(2, 6))
	assert.False(t, view.Flag(1))
	assert.True(t, view.Flag(0))
}

func TestBitViewReadModRegRM(t *testing.T) {
	view := CreateBitView(byte(0b11011001))

	assert.Equal(t, byte(0b11), view.Read(6, 2))
	assert.Equal(t, byte(0b011), view.Read(3, 3))
	assert.Equal(t, byte(0b001), view.Read(0, 3))
}
