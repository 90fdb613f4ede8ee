// Command ecvrf-cli exercises the ecvrf package from the command line: generating key pairs,
// producing proofs, and verifying them. It exists for manual testing and for producing test
// vectors; it is not a supported interface for any production signer.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/mangekyou-network/kamui/ecvrf"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ecvrf-cli",
		Short:         "Elliptic Curve Verifiable Random Function (ECVRF) over Ristretto255 according to draft-irtf-cfrg-vrf-15.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newKeygenCommand())
	root.AddCommand(newProveCommand())
	root.AddCommand(newVerifyCommand())

	return root
}

func newKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair for proving and verification.",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := ecvrf.Generate(rand.Reader)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Secret key: "+hex.EncodeToString(kp.Private.Bytes()))
			fmt.Fprintln(cmd.OutOrStdout(), "Public key: "+hex.EncodeToString(kp.Public.Bytes()))
			return nil
		},
	}
}

func newProveCommand() *cobra.Command {
	var input, secretKey string

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Create an output/hash and a proof.",
		RunE: func(cmd *cobra.Command, args []string) error {
			skBytes, err := hex.DecodeString(secretKey)
			if err != nil {
				return fmt.Errorf("invalid secret key: %w", err)
			}

			alpha, err := hex.DecodeString(input)
			if err != nil {
				return fmt.Errorf("invalid input string: %w", err)
			}

			kp, err := ecvrf.KeyPairFromSecret(skBytes)
			if err != nil {
				return fmt.Errorf("invalid secret key: %w", err)
			}

			proof, err := kp.Prove(alpha)
			if err != nil {
				return err
			}
			output := proof.ToHash()

			fmt.Fprintln(cmd.OutOrStdout(), "Proof:  "+hex.EncodeToString(proof.Bytes()))
			fmt.Fprintln(cmd.OutOrStdout(), "Output: "+hex.EncodeToString(output[:]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "The hex encoded input string.")
	cmd.Flags().StringVarP(&secretKey, "secret-key", "s", "", "A hex encoding of the secret key. Must be 32 bytes.")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("secret-key")

	return cmd
}

func newVerifyCommand() *cobra.Command {
	var output, proofHex, input, publicKey string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an output/hash and a proof.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pkBytes, err := hex.DecodeString(publicKey)
			if err != nil {
				return fmt.Errorf("invalid public key: %w", err)
			}

			alpha, err := hex.DecodeString(input)
			if err != nil {
				return fmt.Errorf("invalid input string: %w", err)
			}

			proofBytes, err := hex.DecodeString(proofHex)
			if err != nil {
				return fmt.Errorf("invalid proof string: %w", err)
			}

			outputBytes, err := hex.DecodeString(output)
			if err != nil {
				return fmt.Errorf("invalid output string: %w", err)
			}
			if len(outputBytes) != ecvrf.OutputSize {
				return fmt.Errorf("output must be %d bytes", ecvrf.OutputSize)
			}
			var expectedOutput [ecvrf.OutputSize]byte
			copy(expectedOutput[:], outputBytes)

			pk, err := ecvrf.DecodePublicKey(pkBytes)
			if err != nil {
				return fmt.Errorf("invalid public key: %w", err)
			}

			proof, err := ecvrf.DecodeProof(proofBytes)
			if err != nil {
				return fmt.Errorf("invalid proof: %w", err)
			}

			if err := ecvrf.VerifyWithOutput(pk, alpha, proof, expectedOutput); err != nil {
				return fmt.Errorf("proof is not correct: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Proof verified correctly!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Hex-encoded output of the proof. Must be 64 bytes.")
	cmd.Flags().StringVarP(&proofHex, "proof", "p", "", "Encoding of the proof to verify. Must be 80 bytes.")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Hex encoding of the input string used to generate the proof.")
	cmd.Flags().StringVarP(&publicKey, "public-key", "k", "", "The public key corresponding to the secret key used to generate the proof.")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("proof")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("public-key")

	return cmd
}
