package hashset

// StrHash is the classic multiplicative string hash, h = 31*h + c, computed
// over the bytes of s.
func StrHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = 31*h + uint32(s[i])
	}
	return h
}

// IntHash hashes an integer by folding its high bits into its low bits.
func IntHash(n int) uint32 {
	x := uint64(n)
	return uint32(x ^ (x >> 32))
}
