// Command palcomp composes and analyzes 16-color terminal palettes: it
// runs a sequence of argv words, each a "verb" or "verb=arg,arg,..."
// command (or a bare register-expression shorthand), against a single
// palette held in memory, in order.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rkoesters/vfontas/internal/palcmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("palcomp: ")
	if err := palcmd.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
