// Package mc implements machine code decoding for the 8086 MOV instruction
// family.
//
// The decoder turns a raw byte sequence into a stream of decoded
// instructions, each one carrying its mnemonic, its resolved destination and
// source operands, and the exact bytes it was encoded with. It handles:
//
//   - Register to register moves (100010dw with MOD=11)
//   - Register to/from memory moves with effective address calculation
//     (100010dw with MOD=00/01/10), including the MOD=00 RM=110 direct
//     address exception
//   - Immediate to register moves (1011w reg), 8 and 16 bit
//   - Memory to accumulator and accumulator to memory moves (101000xw)
//
// Typical usage:
//
//	decoder := mc.NewDecoder(program)
//	for decoder.More() {
//		instr, err := decoder.Next()
//		if err != nil { ... }
//		fmt.Println(instr)
//	}
//
// Decoding is a pure computation over the input buffer: the decoder keeps no
// state other than its cursor offset, never writes partial results, and can
// be restarted from the beginning with Reset. Decode failures are fatal for
// the whole run and report the byte offset they occurred at; skipping bytes
// to resynchronize would silently misalign every following instruction, so
// the decoder never attempts it.
package mc
