package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/bitnum/bitnum"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add A B...",
		Short: "Print the sum of the arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ns, err := a.parse(args)
			if err != nil {
				return err
			}

			sum := bitnum.Zero()
			for _, n := range ns {
				sum = sum.Add(n)
			}

			a.print(cmd, sum)

			return nil
		},
	}
}

func newMulCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mul A B...",
		Short: "Print the product of the arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ns, err := a.parse(args)
			if err != nil {
				return err
			}

			product := bitnum.One()
			for _, n := range ns {
				product = product.Mul(n)
			}

			a.print(cmd, product)

			return nil
		},
	}
}

func newPowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pow BASE EXPONENT",
		Short: "Print BASE raised to EXPONENT",
		Long: `pow multiplies BASE by itself EXPONENT times. The running time grows with the
value of EXPONENT so it is limited by --max-exponent.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ns, err := a.parse(args)
			if err != nil {
				return err
			}

			base, exponent := ns[0], ns[1]
			limit := a.vip.GetUint64("max-exponent")

			e, ok := exponent.Uint64()
			if !ok || e > limit {
				a.log.Warn("exponent rejected", zap.String("exponent", exponent.Decimal()), zap.Uint64("max", limit))

				return oops.Trace(fmt.Errorf("exponent %s exceeds maximum %d", exponent.Decimal(), limit))
			}

			a.log.Info("computing power", zap.Int("base_bits", base.BitLen()), zap.Uint64("exponent", e))

			a.print(cmd, base.Pow(exponent))

			return nil
		},
	}
}

func newEqCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eq A B",
		Short: "Print whether A and B are equal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ns, err := a.parse(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ns[0].Equal(ns[1]))

			return nil
		},
	}
}

func newBitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bits A",
		Short: "Print the bits of A",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ns, err := a.parse(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ns[0].BitString())

			return nil
		},
	}
}

func newHexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hex A",
		Short: "Print the big-endian bytes of A in hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ns, err := a.parse(args)
			if err != nil {
				return err
			}

			data, err := ns[0].MarshalBinary()
			if err != nil {
				return oops.Trace(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))

			return nil
		},
	}
}
