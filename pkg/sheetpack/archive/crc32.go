package archive

// crcPoly is the reflected form of the standard CRC-32 polynomial,
// the same one the ZIP format mandates for entry checksums.
const crcPoly = 0xEDB88320

// Checksum computes the CRC-32 of data.
// The register starts at all-ones and the final value is complemented,
// so Checksum(nil) == 0.
func Checksum(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc ^= uint32(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ crcPoly
			} else {
				crc >>= 1
			}
		}
	}
	return ^crc
}
