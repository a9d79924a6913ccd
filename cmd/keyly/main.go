// Command keyly inspects, checks and seals signing-key material.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keyly",
	Short: "Signing-key material inspection and sealing",
	Long: `keyly extracts private-key material from PEM and JWK/JWKS files and
reports structured validation errors (E001-E007) instead of stack traces.

Examples:
  # Inspect a single key file (source detected by extension)
  keyly inspect server.pem

  # Force the JWK extractor
  keyly inspect signing-key --source jwk

  # Extract every key named in a config file
  keyly check --config keys.yaml

  # Seal a secret for storage at rest
  keyly seal --secret $(openssl rand -base64 32) --in server.pem --out server.sealed`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
