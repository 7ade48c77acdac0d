// Package main is the entry point for the zrsa console program: an
// interactive textbook RSA session plus one-shot key, encrypt, decrypt and
// history commands.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"zrsa/cmd/zrsa/internal/commands"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "zrsa",
		Short: "Textbook RSA over small primes",
		Long: `zrsa generates an RSA keypair from two primes below 50000 and encrypts
text one character at a time. Running it without a subcommand starts an
interactive session.

It is a teaching tool: the keys are tiny and there is no padding.`,
		SilenceUsage: true,
	}

	commands.RegisterPersistentFlags(root)
	commands.InitSessionCommand(root)
	commands.InitKeyCommands(root)
	commands.InitHistoryCommands(root)
	return root
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
