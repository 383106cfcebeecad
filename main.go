////////////////////////////////////////////////////////////////////////////////
// multiverse-sim: runs the multiverse network contracts against an in-memory
// host and replays YAML scenarios through them.
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"multiverse_net/config"
	"multiverse_net/contract"
	"multiverse_net/sdk"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "multiverse-sim",
		Short: "Multiverse network contract simulator",
		Long: `multiverse-sim hosts the message NFT, token, computation and channel
contracts in memory and lets you call them directly or replay scenarios.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().Bool("frozen-clock", false, "Stamp messages with a fixed time so replays are deterministic")

	rootCmd.AddCommand(
		newVersionCmd(),
		newActionsCmd(),
		newCallCmd(),
		newRunCmd(),
	)
	return rootCmd
}

// session is everything a command needs to talk to the contracts.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	sim    *contract.Simulator
}

func newSession(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	logger, err := cfg.CreateLogger()
	if err != nil {
		return nil, err
	}
	var clock sdk.Clock
	if frozen, _ := cmd.Flags().GetBool("frozen-clock"); frozen {
		clock = sdk.FixedClock(sdk.MockTimestamp)
	}
	host := sdk.NewHost(sdk.NewMemoryState(), sdk.NewZapLogger(logger.Named("events")), clock)
	sim, err := contract.NewSimulator(host, contract.SimulatorOptions{
		Owner:  cfg.OwnerAddress(),
		Minter: cfg.MinterAddress(),
		Asset:  cfg.Asset(),
		Logger: logger.Named("simulator"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deploy contracts: %w", err)
	}
	return &session{cfg: cfg, logger: logger, sim: sim}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "multiverse-sim version %s\n", version)
		},
	}
}

func newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List contract actions and their payload formats",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, a := range contract.Actions() {
				format := contract.PayloadFormat(a)
				if format == "" {
					format = "(none)"
				}
				fmt.Fprintf(out, "  %-20s %s\n", a, format)
			}
		},
	}
}

func newCallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <action> [payload]",
		Short: "Call a single contract action",
		Long: `Call a single contract action on a fresh in-memory host.

Examples:
  multiverse-sim call channel_create "Universe A|Universe B|80"
  multiverse-sim call token_mint "100|USER_A"
  multiverse-sim call token_balance USER_A --sender USER_A`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.logger.Sync() //nolint:errcheck

			sender, _ := cmd.Flags().GetString("sender")
			from := sdk.AddressFromString(sender)
			if from.IsZero() {
				from = s.cfg.OwnerAddress()
			}
			payload := ""
			if len(args) == 2 {
				payload = args[1]
			}
			res := s.sim.Call(args[0], payload, from)
			fmt.Fprintln(cmd.OutOrStdout(), res.Ret)
			if !res.Success {
				return fmt.Errorf("%s failed", args[0])
			}
			return nil
		},
	}
	cmd.Flags().String("sender", "", "Calling identity (defaults to the configured owner)")
	return cmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Replay scenario files against fresh contract state",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.logger.Sync() //nolint:errcheck

			dump, _ := cmd.Flags().GetBool("dump")
			showMetrics, _ := cmd.Flags().GetBool("metrics")
			out := cmd.OutOrStdout()

			var failed []Mismatch
			for _, path := range args {
				scenarios, err := loadScenarios(path)
				if err != nil {
					return err
				}
				for _, sc := range scenarios {
					fmt.Fprintf(out, "== %s\n", sc.Name)
					mismatches, err := replay(s.sim, sc, s.cfg.OwnerAddress(), func(r stepReport) {
						mark := "ok  "
						if !r.Result.Success {
							mark = "fail"
						}
						fmt.Fprintf(out, "  %s %-20s %s\n", mark, r.Step.Action, r.Result.Ret)
					})
					if err != nil {
						return err
					}
					for _, m := range mismatches {
						fmt.Fprintf(out, "  MISMATCH %s\n", m)
					}
					failed = append(failed, mismatches...)
					if dump {
						recs, err := s.sim.Records()
						if err != nil {
							return fmt.Errorf("failed to read records: %w", err)
						}
						spew.Fdump(out, recs)
					}
					s.logger.Info("scenario replayed",
						zap.String("scenario", sc.Name),
						zap.Int("steps", len(sc.Steps)),
						zap.Int("mismatches", len(mismatches)),
					)
				}
			}
			if showMetrics {
				if err := writeMetrics(out); err != nil {
					return err
				}
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d expectation(s) not met", len(failed))
			}
			return nil
		},
	}
	cmd.Flags().Bool("dump", false, "Dump decoded contract records after each scenario")
	cmd.Flags().Bool("metrics", false, "Print contract metrics in Prometheus text format at the end")
	return cmd
}

// writeMetrics prints the multiverse_* families from the default registry.
func writeMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "multiverse_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
