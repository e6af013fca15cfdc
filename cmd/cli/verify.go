package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/jobshop/internal/cp"
	"github.com/me/jobshop/internal/schedule"
)

func verifyCmd() *cobra.Command {
	var (
		file         string
		scheduleFile string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a previously produced schedule against its instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			instance, err := schedule.InputFromJson(file)
			if err != nil {
				return fmt.Errorf("cannot parse input file: %w", err)
			}

			data, err := os.ReadFile(scheduleFile)
			if err != nil {
				return fmt.Errorf("cannot read schedule file: %w", err)
			}
			var output solveOutput
			if err := json.Unmarshal(data, &output); err != nil {
				return fmt.Errorf("cannot parse schedule file: %w", err)
			}
			if output.Schedule == nil {
				return fmt.Errorf("schedule file carries no timing data (status %q)", output.Status)
			}

			scheduler := schedule.NewScheduler(cp.NewCpSatSolver())
			if !scheduler.Verify(output.Schedule, instance) {
				logger.Error().Msg("schedule violates the instance constraints")
				os.Exit(exitVerify)
			}

			logger.Info().Int64("makespan", output.Schedule.Makespan()).Msg("schedule satisfies all constraints")
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the JSON problem instance")
	cmd.Flags().StringVar(&scheduleFile, "schedule", "", "path to the schedule produced by solve")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	cobra.CheckErr(cmd.MarkFlagRequired("schedule"))

	return cmd
}
