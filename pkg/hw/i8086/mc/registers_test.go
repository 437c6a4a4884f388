package mc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterNameCanonicalTable(t *testing.T) {
	expectedByte := []string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}
	expectedWord := []string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}

	for field := byte(0); field < 8; field++ {
		assert.Equal(t, expectedByte[field], RegisterName(field, false))
		assert.Equal(t, expectedWord[field], RegisterName(field, true))
	}
}

func TestRegisterNamesAreUniquePerWidth(t *testing.T) {
	for _, wide := range []bool{false, true} {
		seen := map[string]byte{}

		for field := byte(0); field < 8; field++ {
			name := RegisterName(field, wide)

			previous, duplicated := seen[name]
			assert.False(t, duplicated, "field values %v and %v map to the same name %v", previous, field, name)
			seen[name] = field
		}
	}
}

func TestRegisterNameMasksFieldToRange(t *testing.T) {
	assert.Equal(t, RegisterName(0b001, true), RegisterName(0b1001, true))
}

func TestEffectiveAddressBaseTable(t *testing.T) {
	expected := []string{"bx + si", "bx + di", "bp + si", "bp + di", "si", "di", "bp", "bx"}

	for rm := byte(0); rm < 8; rm++ {
		assert.Equal(t, expected[rm], EffectiveAddressBase(rm))
	}
}
