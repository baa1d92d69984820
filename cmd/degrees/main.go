// Command degrees finds how many co-star links separate two people in a
// movie dataset, and prints the chain of movies that connects them.
//
//	degrees [directory] [-q]          interactive: prompts for two names
//	degrees path "Name 1" "Name 2"    one-shot
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
