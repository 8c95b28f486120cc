package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/bitnum/bitnum"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""
)

// DefaultMaxExponent is the largest exponent pow accepts unless configured.
const DefaultMaxExponent = 4096

// app carries the configuration and logger shared by the subcommands.
type app struct {
	vip *viper.Viper
	log *zap.Logger
}

// NewRootCmd returns the bitnum command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{
		vip: viper.New(),
		log: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "bitnum",
		Short: "Arbitrary precision unsigned integer arithmetic",
		Long: `bitnum performs arithmetic on non-negative decimal integers of any size.

Flags may also be set with BITNUM_ prefixed environment variables (e.g.
BITNUM_MAX_EXPONENT=100).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)

	flags := rootCmd.PersistentFlags()
	flags.Bool("binary", false, "print results as bits instead of decimal digits")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Uint64("max-exponent", DefaultMaxExponent, "largest exponent accepted by pow")

	err := a.vip.BindPFlags(flags)
	if err != nil {
		panic(err)
	}

	a.vip.SetEnvPrefix("bitnum")
	a.vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.vip.AutomaticEnv()

	rootCmd.AddCommand(
		newAddCmd(a),
		newMulCmd(a),
		newPowCmd(a),
		newEqCmd(a),
		newBitsCmd(a),
		newHexCmd(a),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func (a *app) setup() (err error) {
	var level zapcore.Level

	err = level.UnmarshalText([]byte(a.vip.GetString("log-level")))
	if err != nil {
		return oops.Trace(err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	a.log, err = cfg.Build()
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// parse converts decimal arguments to numbers.
func (a *app) parse(args []string) (ns []bitnum.Number, err error) {
	ns = make([]bitnum.Number, 0, len(args))

	for _, arg := range args {
		n, err := bitnum.FromDecimal(arg)
		if err != nil {
			return nil, err
		}

		a.log.Debug("parsed operand", zap.String("decimal", arg), zap.Int("bits", n.BitLen()))

		ns = append(ns, n)
	}

	return ns, nil
}

// print writes n in the configured format.
func (a *app) print(cmd *cobra.Command, n bitnum.Number) {
	if a.vip.GetBool("binary") {
		fmt.Fprintln(cmd.OutOrStdout(), n.BitString())

		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), n.Decimal())
}
