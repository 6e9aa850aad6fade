package command

import (
	"strings"

	"github.com/rotisserie/eris"
)

// CredentialKey is the environment variable holding the Firecrawl API key.
const CredentialKey = "FIRECRAWL_API_KEY"

// ErrMissingCredential is returned when CredentialKey is absent from the environment.
var ErrMissingCredential = eris.New(CredentialKey + " not found in environment")

// EnvVar is one entry of the caller's environment.
type EnvVar struct {
	Key   string
	Value string
}

// ResolveCredential returns the value of the first entry whose key is exactly
// CredentialKey. Keys are compared case-sensitively and values are not trimmed.
func ResolveCredential(env []EnvVar) (string, error) {
	for _, kv := range env {
		if kv.Key == CredentialKey {
			return kv.Value, nil
		}
	}
	return "", ErrMissingCredential
}

// EnvFromOS converts os.Environ-style KEY=VALUE strings, preserving order.
// Entries without '=' are kept with an empty value.
func EnvFromOS(environ []string) []EnvVar {
	env := make([]EnvVar, 0, len(environ))
	for _, entry := range environ {
		key, value, _ := strings.Cut(entry, "=")
		env = append(env, EnvVar{Key: key, Value: value})
	}
	return env
}
