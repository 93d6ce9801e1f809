// Package secrets resolves long-lived credentials at process start.
//
// A credential can be supplied directly through configuration (local
// development) or by reference: a secret identifier resolved against an
// HTTP secret store (production). Resolved values are cached in memory for
// the process lifetime. A failed fetch is logged and leaves the credential
// unset; consumers treat "unset" as a fail-closed configuration error.
package secrets
