// Command softfloat-selftest runs softfloat.RunSelfTest and reports the
// result, so a deployment can verify its host's FPU agrees with the
// soft path before trusting the fast path (spec §4.13).
package main

import (
	"fmt"
	"os"

	"github.com/zerfoo/softfloat"
)

func main() {
	if err := softfloat.RunSelfTest(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("softfloat: self-test passed")
}
