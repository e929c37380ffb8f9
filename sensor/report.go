package sensor

// reportLen is the size of one touch report on the wire.
const reportLen = 9

// bitsPerByte is how many buttons one report byte carries.
const bitsPerByte = 5

// EncodeReport packs the pressed buttons into a report frame: '(' followed
// by seven bytes holding five buttons each, lowest button in bit 0, then
// ')'. Bits above NumButtons are ignored.
func EncodeReport(bits uint64) [reportLen]byte {
	var r [reportLen]byte
	r[0] = '('
	for i := 0; i < reportLen-2; i++ {
		r[i+1] = byte(bits>>(i*bitsPerByte)) & (1<<bitsPerByte - 1)
	}
	r[reportLen-2] &= 0x0f // buttons 30-33 only
	r[reportLen-1] = ')'
	return r
}

// DecodeReport is the inverse of EncodeReport. It reports false when r is
// not framed as a report.
func DecodeReport(r [reportLen]byte) (uint64, bool) {
	if r[0] != '(' || r[reportLen-1] != ')' {
		return 0, false
	}
	var bits uint64
	for i := 0; i < reportLen-2; i++ {
		bits |= uint64(r[i+1]&(1<<bitsPerByte-1)) << (i * bitsPerByte)
	}
	return bits, true
}
