package wallpaper

import (
	"strconv"
	"unicode/utf16"
)

// SimpleHash hashes a string with the classic shift-and-subtract rolling
// hash, truncated to 32 bits at every step, and renders the absolute value
// in base 36. Collisions are accepted; the result is a dedup key, not a
// fingerprint.
func SimpleHash(s string) string {
	var hash int32
	for _, unit := range utf16.Encode([]rune(s)) {
		hash = (hash << 5) - hash + int32(unit)
	}
	return strconv.FormatInt(abs64(int64(hash)), 36)
}

// BlobHash hashes a binary payload by combining its byte length, MIME type
// and a rolling checksum of the first 1KB. Large near-duplicate files that
// share a prefix can collide; that is a known limit of the scheme.
func BlobHash(data []byte, mime string) string {
	sizeType := strconv.Itoa(len(data)) + "-" + mime

	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	var content int32
	for _, b := range head {
		content = (content << 5) - content + int32(b)
	}

	return SimpleHash(sizeType + strconv.FormatInt(abs64(int64(content)), 10))
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
