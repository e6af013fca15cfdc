package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/jobshop/internal/config"
	"github.com/me/jobshop/internal/cp"
	"github.com/me/jobshop/internal/gantt"
	"github.com/me/jobshop/internal/schedule"
)

// Exit codes follow the SAT-solver convention: 0 on a usable schedule,
// 20 on infeasible, 30 on unknown, 15 when the produced schedule fails
// independent verification.
const (
	exitInfeasible = 20
	exitUnknown    = 30
	exitVerify     = 15
)

type solveOutput struct {
	Status   string            `json:"status"`
	Makespan int64             `json:"makespan,omitempty"`
	Schedule schedule.Schedule `json:"schedule,omitempty"`
}

func solveCmd() *cobra.Command {
	var (
		file       string
		out        string
		configPath string
		horizon    int64
		timeLimit  time.Duration
		workers    int32
		showGantt  bool
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute a makespan-minimal schedule for a problem instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if logLevel == "" {
				logLevel = cfg.LogLevel
			}
			setLogLevel(logLevel)

			if timeLimit == 0 {
				limit, err := cfg.TimeLimit()
				if err != nil {
					return err
				}
				timeLimit = limit
			}
			if workers == 0 {
				workers = cfg.Solver.Workers
			}
			if horizon == 0 {
				horizon = cfg.Horizon
			}

			instance, err := schedule.InputFromJson(file)
			if err != nil {
				return fmt.Errorf("cannot parse input file: %w", err)
			}
			if horizon > 0 {
				instance.Horizon = horizon
			}

			solver := cp.NewCpSatSolverWithParams(cp.Params{TimeLimit: timeLimit, Workers: workers})
			scheduler := schedule.NewScheduler(solver)

			result, err := scheduler.Build(cmd.Context(), instance)
			if err != nil {
				return err
			}

			logger.Info().
				Stringer("status", result.Status).
				Int("variables", result.Stats.Variables).
				Int("constraints", result.Stats.Constraints).
				Dur("duration", result.Stats.Duration).
				Msg("solver finished")

			switch result.Status {
			case cp.Infeasible:
				logger.Error().Msg("no schedule satisfies the instance")
				emit(out, solveOutput{Status: result.Status.String()})
				os.Exit(exitInfeasible)
			case cp.Unknown:
				logger.Error().Msg("search budget exhausted without a schedule")
				emit(out, solveOutput{Status: result.Status.String()})
				os.Exit(exitUnknown)
			}

			if !scheduler.Verify(result.Schedule, instance) {
				logger.Error().Msg("produced schedule failed verification")
				os.Exit(exitVerify)
			}

			emit(out, solveOutput{
				Status:   result.Status.String(),
				Makespan: result.Makespan,
				Schedule: result.Schedule,
			})
			if showGantt {
				fmt.Fprint(os.Stderr, gantt.Render(instance, result.Schedule))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the JSON problem instance")
	cmd.Flags().StringVar(&out, "out", "", "write the schedule to this file instead of stdout")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().Int64Var(&horizon, "horizon", 0, "time horizon; 0 derives a default from the instance")
	cmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "wall-clock solve budget; 0 means unlimited")
	cmd.Flags().Int32Var(&workers, "workers", 0, "solver worker count; 0 keeps the solver default")
	cmd.Flags().BoolVar(&showGantt, "gantt", false, "print a text Gantt chart to stderr")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}

func emit(out string, output solveOutput) {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot marshal schedule")
	}

	if out == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(out, data, 0o666); err != nil {
		logger.Fatal().Err(err).Msg("cannot write output file")
	}
}
