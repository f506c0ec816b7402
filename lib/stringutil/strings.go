package stringutil

// Empty returns true if any of the passed in values are the empty string.
func Empty(vals ...string) bool {
	for _, val := range vals {
		if val == "" {
			return true
		}
	}

	return false
}
