package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMessageID builds the wire message-id for a source row.
func FormatMessageID(ref SourceRef, host string) string {
	return fmt.Sprintf("<%s-%d@%s>", ref.Kind, ref.NativeID, host)
}

// ParseMessageID is the inverse of FormatMessageID.
func ParseMessageID(id string) (SourceRef, string, error) {
	if !IsMessageID(id) {
		return SourceRef{}, "", fmt.Errorf("malformed message-id %q", id)
	}
	local, host, ok := strings.Cut(id[1:len(id)-1], "@")
	if !ok || host == "" {
		return SourceRef{}, "", fmt.Errorf("malformed message-id %q", id)
	}
	kind, native, ok := strings.Cut(local, "-")
	if !ok || !SourceKind(kind).Valid() {
		return SourceRef{}, "", fmt.Errorf("unknown source kind in message-id %q", id)
	}
	n, err := strconv.ParseInt(native, 10, 64)
	if err != nil {
		return SourceRef{}, "", fmt.Errorf("parse native id in %q: %w", id, err)
	}
	return SourceRef{Kind: SourceKind(kind), NativeID: n}, host, nil
}

// IsMessageID reports whether s is wrapped in angle brackets.
func IsMessageID(s string) bool {
	return len(s) > 2 && s[0] == '<' && s[len(s)-1] == '>'
}
