package main

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"fmt"
	"os"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/spf13/cobra"

	"github.com/keksclan/goKeyly/keyly"
)

var inspectSource string

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Extract a key from a file and report the outcome",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectSource, "source", "auto", "key encoding: pem, jwk or auto")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	ex, err := keyly.New(keyly.Config{Source: keyly.Source(inspectSource)})
	if err != nil {
		return err
	}
	res := ex.Extract(args[0])
	if !res.OK() {
		for _, ve := range res.Errors {
			fmt.Fprintln(os.Stderr, ve.Error())
		}
		return fmt.Errorf("extraction failed for %s", args[0])
	}
	fmt.Printf("%s: %s\n", args[0], describeKey(res.Key))
	return nil
}

func describeKey(key any) string {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		return fmt.Sprintf("RSA private key (%d bit)", k.N.BitLen())
	case *ecdsa.PrivateKey:
		return fmt.Sprintf("EC private key (%s)", k.Curve.Params().Name)
	case ed25519.PrivateKey:
		return "Ed25519 private key"
	case jwk.Key:
		return fmt.Sprintf("JWK %s private key (kid %q)", k.KeyType(), k.KeyID())
	default:
		return fmt.Sprintf("%T", key)
	}
}
