// Command pted is a scriptable harness over the engine package: it
// opens one file, applies a small set of operations to it, and exits.
// It is not an interactive editor — no cursor, no viewport, no key
// bindings.
package main

func main() {
	Execute()
}
