// Command hash-generator prints bcrypt hashes for the given passwords, for
// seeding user rows by hand.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/storefront-api/internal/service/auth"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hash-generator", flag.ContinueOnError)
	fs.SetOutput(out)
	cost := fs.Int("cost", 10, "bcrypt cost factor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: hash-generator [-cost n] password [password...]")
	}

	hasher := auth.NewBcryptHasher(*cost)
	for _, password := range fs.Args() {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		fmt.Fprintf(out, "%s\n", hash)
	}
	return nil
}
