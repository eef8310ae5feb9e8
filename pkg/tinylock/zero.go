package tinylock

// Zero overwrites b in place. Derived keys are zeroized internally on every
// exit path; callers can use Zero to scrub passwords and plaintext buffers
// once they're done with them.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
