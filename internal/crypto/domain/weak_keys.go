package domain

import "encoding/hex"

// weakKeyCheck is a named predicate evaluated against decoded master key bytes.
//
// Matching on bytes rather than on the hex text makes the denylist immune to
// case-sensitivity bugs: "DEADBEEF..." and "deadbeef..." decode to the same
// bytes and match the same predicate.
type weakKeyCheck struct {
	name  string
	match func(key []byte) bool
}

// weakKeyChecks is the compiled-in denylist of known-bad key patterns.
// The set is immutable and process-wide.
var weakKeyChecks = []weakKeyCheck{
	{name: "all-zero", match: isAllZero},
	{name: "constant-byte", match: isConstantByte},
	{name: "ascending-sequence", match: matchRepeatedHex("0123456789abcdef")},
	{name: "descending-sequence", match: matchRepeatedHex("fedcba9876543210")},
	{name: "placeholder-deadbeef", match: matchRepeatedHex("deadbeef")},
	{name: "placeholder-cafebabe", match: matchRepeatedHex("cafebabe")},
	{name: "placeholder-feedface", match: matchRepeatedHex("feedface")},
	{name: "placeholder-byte-ramp", match: matchRepeatedHex("00112233445566778899aabbccddeeff")},
}

// MatchWeakKey checks key against the weak-key denylist and returns the name
// of the first matching pattern. The second return value reports whether any
// pattern matched.
func MatchWeakKey(key []byte) (string, bool) {
	for _, check := range weakKeyChecks {
		if check.match(key) {
			return check.name, true
		}
	}
	return "", false
}

// isAllZero reports whether every byte of the key is zero.
func isAllZero(key []byte) bool {
	for _, b := range key {
		if b != 0 {
			return false
		}
	}
	return len(key) > 0
}

// isConstantByte reports whether the key repeats a single byte value.
// This covers all-same-nibble keys such as "aaaa..." (0xaa) and "1111..." (0x11).
func isConstantByte(key []byte) bool {
	if len(key) == 0 {
		return false
	}
	first := key[0]
	for _, b := range key[1:] {
		if b != first {
			return false
		}
	}
	return true
}

// matchRepeatedHex builds a predicate that matches keys equal to the given hex
// fragment repeated to fill the full key length. The fragment's byte length
// must divide MasterKeySize evenly.
func matchRepeatedHex(fragment string) func(key []byte) bool {
	pattern, err := hex.DecodeString(fragment)
	if err != nil || len(pattern) == 0 {
		panic("weak key fragment must be valid hex: " + fragment)
	}

	return func(key []byte) bool {
		if len(key) == 0 || len(key)%len(pattern) != 0 {
			return false
		}
		for i, b := range key {
			if b != pattern[i%len(pattern)] {
				return false
			}
		}
		return true
	}
}
