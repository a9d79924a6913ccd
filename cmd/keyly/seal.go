package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keksclan/goKeyly/sealbox"
)

var (
	sealSecret string
	sealIn     string
	sealOut    string
)

var sealCmd = &cobra.Command{
	Use:   "seal",
	Short: "Seal a secret with Twofish-GCM",
	Long: `Encrypt stdin (or --in) with the base64 secret and write the sealed
value base64(nonce)|base64(ciphertext) to stdout (or --out).`,
	RunE: runSeal,
}

var unsealCmd = &cobra.Command{
	Use:   "unseal",
	Short: "Open a sealed value",
	RunE:  runUnseal,
}

func init() {
	for _, c := range []*cobra.Command{sealCmd, unsealCmd} {
		c.Flags().StringVar(&sealSecret, "secret", "", "base64-encoded secret (16, 24 or 32 bytes decoded)")
		c.Flags().StringVar(&sealIn, "in", "", "input file (default stdin)")
		c.Flags().StringVar(&sealOut, "out", "", "output file (default stdout)")
		_ = c.MarkFlagRequired("secret")
		rootCmd.AddCommand(c)
	}
}

func newSealbox() (*sealbox.Sealbox, error) {
	secret, err := base64.StdEncoding.DecodeString(strings.TrimSpace(sealSecret))
	if err != nil {
		return nil, fmt.Errorf("decode secret: %w", err)
	}
	return sealbox.New(secret)
}

func readInput() ([]byte, error) {
	if sealIn == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(sealIn)
}

func writeOutput(data []byte) error {
	if sealOut == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(sealOut, data, 0o600)
}

func runSeal(cmd *cobra.Command, args []string) error {
	box, err := newSealbox()
	if err != nil {
		return err
	}
	plain, err := readInput()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	sealed, err := box.Seal(plain)
	if err != nil {
		return err
	}
	return writeOutput([]byte(sealed + "\n"))
}

func runUnseal(cmd *cobra.Command, args []string) error {
	box, err := newSealbox()
	if err != nil {
		return err
	}
	sealed, err := readInput()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	plain, err := box.Open(strings.TrimSpace(string(sealed)))
	if err != nil {
		return err
	}
	return writeOutput(plain)
}
