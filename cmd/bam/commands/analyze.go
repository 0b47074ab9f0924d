package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bam/internal/app"
	"go.trai.ch/bam/internal/core/domain"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyze [programs...]",
		Aliases: []string{"analyse"},
		Short:   "Check that no target location is reachable",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			flags := cmd.Flags()
			opts := app.RunOptions{}
			if flags.Changed("proof") {
				v, _ := flags.GetBool("proof")
				opts.ProduceProofs = &v
			}
			if flags.Changed("check") {
				v, _ := flags.GetBool("check")
				opts.CheckProofs = &v
			}
			if flags.Changed("max-depth") {
				v, _ := flags.GetInt("max-depth")
				opts.MaxRecursionDepth = &v
			}
			if flags.Changed("max-iterations") {
				v, _ := flags.GetInt("max-iterations")
				opts.MaxIterations = &v
			}
			if noReport, _ := flags.GetBool("no-report"); !noReport {
				opts.ReportDir, _ = flags.GetString("report")
			}
			opts.LogLevel, _ = flags.GetString("log-level")

			_, err := c.app.Run(cmd.Context(), args, opts)
			return err
		},
	}
	cmd.Flags().BoolP("proof", "p", false, "Keep block proofs for later checking")
	cmd.Flags().BoolP("check", "c", false, "Check the proof of safe programs")
	cmd.Flags().Int("max-depth", 0, "Maximum nesting of block analyses")
	cmd.Flags().Int("max-iterations", 0, "Iteration budget of each block analysis, 0 for unbounded")
	cmd.Flags().String("report", domain.DefaultReportPath(), "Directory receiving analysis reports")
	cmd.Flags().Bool("no-report", false, "Do not write analysis reports")
	return cmd
}
