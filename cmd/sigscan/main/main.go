// Command sigscan is a thin CLI over the sigscan engine: it parses an
// AOB pattern, scans a dumped module image (or, eventually, a live
// process section) for it, and prints matches.
package main

import "github.com/coregx/sigscan/cmd/sigscan"

func main() {
	cmd.Execute()
}
