package commands

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"zrsa"
)

// InitKeyCommands registers keygen, encrypt and decrypt.
func InitKeyCommands(root *cobra.Command) {
	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a keypair and print it",
		RunE:  runKeygen,
	}
	keygenCmd.Flags().Bool("dump", false, "dump the key structures")
	root.AddCommand(keygenCmd)

	encryptCmd := &cobra.Command{
		Use:   "encrypt [text]",
		Short: "Encrypt text one byte at a time with a public key",
		Args:  cobra.ExactArgs(1),
		RunE:  runEncrypt,
	}
	encryptCmd.Flags().String("e", "", "public exponent")
	encryptCmd.Flags().String("n", "", "modulus")
	_ = encryptCmd.MarkFlagRequired("e")
	_ = encryptCmd.MarkFlagRequired("n")
	root.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt [code...]",
		Short: "Decrypt ciphertext codes with a private key",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDecrypt,
	}
	decryptCmd.Flags().String("d", "", "private exponent")
	decryptCmd.Flags().String("n", "", "modulus")
	_ = decryptCmd.MarkFlagRequired("d")
	_ = decryptCmd.MarkFlagRequired("n")
	root.AddCommand(decryptCmd)
}

func runKeygen(cmd *cobra.Command, _ []string) error {
	logger, err := setupLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	gen, err := newGenerator(cmd, logger)
	if err != nil {
		return err
	}
	pub, priv, err := gen.Generate()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printInformation(out, pub, priv)
	fmt.Fprintln(out, "fingerprint:", pub.Fingerprint())

	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return err
	}
	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}
		cfg.Fdump(out, pub, priv)
	}
	return nil
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	e, n, err := keyFlags(cmd, "e")
	if err != nil {
		return err
	}
	pub := &zrsa.PublicKey{E: e, N: n}
	if n.Cmp(big.NewInt(256)) <= 0 {
		return fmt.Errorf("modulus %s too small to encrypt bytes", n)
	}
	fmt.Fprintln(cmd.OutOrStdout(), joinCodes(zrsa.EncryptText(pub, args[0])))
	return nil
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	d, n, err := keyFlags(cmd, "d")
	if err != nil {
		return err
	}
	priv := &zrsa.PrivateKey{D: d, N: n}

	codes := make([]*big.Int, 0, len(args))
	for _, arg := range args {
		for _, f := range strings.Fields(arg) {
			c, err := parseBig("code", f)
			if err != nil {
				return err
			}
			codes = append(codes, c)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), zrsa.DecryptText(priv, codes))
	return nil
}

// keyFlags reads the exponent flag named exp and the modulus flag.
func keyFlags(cmd *cobra.Command, exp string) (*big.Int, *big.Int, error) {
	expValue, err := cmd.Flags().GetString(exp)
	if err != nil {
		return nil, nil, err
	}
	nValue, err := cmd.Flags().GetString("n")
	if err != nil {
		return nil, nil, err
	}
	x, err := parseBig(exp, expValue)
	if err != nil {
		return nil, nil, err
	}
	n, err := parseBig("n", nValue)
	if err != nil {
		return nil, nil, err
	}
	if x.Sign() < 0 || n.Sign() <= 0 {
		return nil, nil, fmt.Errorf("exponent must be non-negative and modulus positive")
	}
	return x, n, nil
}
