package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/threshold/pkg/field"
)

var (
	fieldType string
	fieldA    int64
	fieldB    int64

	fieldCmd = &cobra.Command{
		Use:   "field",
		Short: "Exercise field arithmetic",
		Long:  `Compute a + b, a - b, a * b and -a in the named field and print the canonical results.`,
		RunE:  runField,
	}
)

func init() {
	fieldCmd.Flags().StringVarP(&fieldType, "type", "t", "fp31", "field type: fp2, fp31, fp32BitPrime")
	fieldCmd.Flags().Int64VarP(&fieldA, "a", "a", 0, "left operand")
	fieldCmd.Flags().Int64VarP(&fieldB, "b", "b", 0, "right operand")
	rootCmd.AddCommand(fieldCmd)
}

func runField(cmd *cobra.Command, args []string) error {
	log := newLogger()

	ft, err := field.ParseType(fieldType)
	if err != nil {
		return err
	}
	log.Debug().Str("type", ft.String()).Int64("a", fieldA).Int64("b", fieldB).Msg("parsed field operands")

	switch ft {
	case field.TypeFp2:
		a := field.Fp2FromUint128(field.Uint128{Lo: uint64(fieldA)})
		b := field.Fp2FromUint128(field.Uint128{Lo: uint64(fieldB)})
		printResults(a, b, a.Add(b), a.Sub(b), a.Mul(b), a.Neg())
	case field.TypeFp31:
		a := field.Fp31FromUint128(field.Uint128{Lo: uint64(fieldA)})
		b := field.Fp31FromUint128(field.Uint128{Lo: uint64(fieldB)})
		printResults(a, b, a.Add(b), a.Sub(b), a.Mul(b), a.Neg())
	case field.TypeFp32BitPrime:
		a := field.Fp32BitPrimeFromUint128(field.Uint128{Lo: uint64(fieldA)})
		b := field.Fp32BitPrimeFromUint128(field.Uint128{Lo: uint64(fieldB)})
		printResults(a, b, a.Add(b), a.Sub(b), a.Mul(b), a.Neg())
	}
	return nil
}

func printResults[F field.Field[F]](a, b, sum, diff, prod, negA F) {
	fmt.Printf("a        = %v\n", a)
	fmt.Printf("b        = %v\n", b)
	fmt.Printf("a + b    = %v\n", sum)
	fmt.Printf("a - b    = %v\n", diff)
	fmt.Printf("a * b    = %v\n", prod)
	fmt.Printf("-a       = %v\n", negA)
}
