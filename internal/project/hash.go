package project

import "crypto/sha256"

// Digest is a sha256 content hash. It keys the token disk cache and
// identifies a source file's exact bytes.
type Digest [sha256.Size]byte

// HashBytes hashes raw content.
func HashBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// HashText hashes source text.
func HashText(text string) Digest {
	return sha256.Sum256([]byte(text))
}
