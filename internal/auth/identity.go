package auth

// Identity is the verified caller as reported by the identity provider.
type Identity struct {
	Subject string
	Email   *string
	// Claims holds every claim of the token, custom claims included.
	Claims map[string]any
}
