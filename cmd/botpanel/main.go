// Command botpanel runs the chatbot admin panel and offers the same
// operations from the command line.
package main

import (
	"os"
	"strings"
)

var version = "dev"

func main() {
	if err := newRootCmd(environ()).Execute(); err != nil {
		printFailure(os.Stderr, "Error: %s", err)
		os.Exit(1)
	}
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
