package mc

// Canonical 8086 register name tables, indexed by the 3 bit REG/RM field
// value. W=0 selects the byte registers, W=1 the word registers.
var (
	byteRegisterNames = [8]string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}
	wordRegisterNames = [8]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}
)

// Effective address base expressions, indexed by the RM field value when
// MOD is a memory mode. RM=110 with MOD=00 is the direct address exception
// and never reaches this table.
var effectiveAddressBases = [8]string{
	"bx + si",
	"bx + di",
	"bp + si",
	"bp + di",
	"si",
	"di",
	"bp",
	"bx",
}

// Maps a 3 bit REG/RM field value and the W flag to the canonical 8086
// register name. Total over its 16 inputs, the field value is masked to
// range.
func RegisterName(field byte, wide bool) string {
	if wide {
		return wordRegisterNames[field&0b111]
	}

	return byteRegisterNames[field&0b111]
}

// Maps a 3 bit RM field value to its effective address base expression
func EffectiveAddressBase(rm byte) string {
	return effectiveAddressBases[rm&0b111]
}
