// Package envtest provides fake environments for tests.
package envtest

import "fmt"

// Env is a fake environment.
// The zero value is an empty environment.
type Env map[string]string

// Empty is an environment with no variables set.
var Empty Env

// Pairs builds an environment from alternating names and values.
// It panics if given an odd number of items.
func Pairs(items ...string) Env {
	if len(items)%2 != 0 {
		panic(fmt.Sprintf("envtest: odd number of items (%d): %q", len(items), items))
	}

	env := make(Env, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		env[items[i]] = items[i+1]
	}
	return env
}

// Getenv looks up a variable, returning an empty string if it is unset.
// It matches the signature of os.Getenv.
func (e Env) Getenv(name string) string {
	return e[name]
}
