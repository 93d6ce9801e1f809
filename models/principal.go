package models

// Principal is the verified identity extracted from an identity-provider
// token. It is what the identity guard stores in the request context; no
// raw token material travels past the middleware.
type Principal struct {
	// Subject is the identity provider's stable user identifier.
	Subject string `json:"sub"`

	// Email is the address asserted by the token.
	Email string `json:"email"`

	// EmailVerified reports whether the provider confirmed the address.
	EmailVerified bool `json:"email_verified"`
}
