// pkg/nixcache/hash.go
package nixcache

// Nix uses a special base32 alphabet (without e, o, u, t)
const nixBase32Alphabet = "0123456789abcdfghijklmnpqrsvwxyz"

// toNixBase32 converts a byte slice to a Nix-compatible base32 encoded string
func toNixBase32(bytes []byte) string {
	length := (len(bytes)*8-1)/5 + 1
	result := make([]byte, length)

	for n := 0; n < length; n++ {
		b := n * 5
		i := b / 8
		j := b % 8

		// bits from the lower byte
		v1 := byte(0)
		if j < 8 {
			v1 = bytes[i] >> uint(j)
		}

		// bits from the upper byte
		v2 := byte(0)
		if i < len(bytes)-1 {
			if 8-j < 8 {
				v2 = bytes[i+1] << uint(8-j)
			}
		}

		v := (v1 | v2) & 0x1F
		result[length-n-1] = nixBase32Alphabet[v]
	}

	return string(result)
}
