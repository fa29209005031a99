package domain

// ReplyLimit returns the character cap for a reply depending on whether it is
// the first reply of the call.
func ReplyLimit(firstReply bool, firstLimit int, followUpLimit int) int {
	if firstReply {
		return firstLimit
	}
	return followUpLimit
}

// TruncateReply cuts text to at most limit characters. No sentence boundary
// handling is attempted.
func TruncateReply(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
