package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// It clears only b itself: copies made while encoding a request from it
// (strings, JSON buffers) stay in memory until collected.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ValidRole reports whether role is one of the known role labels.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
