// Command vfontas assembles and converts bitmap console fonts: it runs a
// sequence of argv words, each a "verb" or "verb=arg,arg,..." command,
// against a single font held in memory, in order.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rkoesters/vfontas/internal/vfcmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vfontas: ")
	if err := vfcmd.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
