package main

import (
	"fmt"
	"io"

	"memlist"
	"memlist/internal/config"
	"memlist/internal/jsonx"
	"memlist/internal/logx"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type RunConfig struct {
	ConfigPath string
	JSON       bool
	Verbose    bool
}

var runConfig RunConfig

var runCmd = &cobra.Command{
	Use:   "run [flags]",
	Short: "Run a script against a memory space",
	Long: `This command builds a memory space from the config file and executes its script
Examples:
  # Run the script in sim.yml and print free/allocated lists
  run -c sim.yml

  # Print the final state as JSON
  run -c sim.yml --json
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if runConfig.ConfigPath != "" {
			loaded, err := config.Load(runConfig.ConfigPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		logx.Init(cfg.LogOptions())
		return runScript(cfg, cmd.OutOrStdout(), runConfig.JSON, runConfig.Verbose)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runConfig.ConfigPath, "config", "c", "", "config file (.yml/.yaml/.ini)")
	runCmd.Flags().BoolVar(&runConfig.JSON, "json", false, "print final state as JSON")
	runCmd.Flags().BoolVarP(&runConfig.Verbose, "verbose", "v", false, "print state after every step")
}

// runScript 依次执行脚本，malloc 失败只记录不中断。
func runScript(cfg *config.Config, w io.Writer, asJSON, verbose bool) error {
	s, err := memlist.OpenSpace(cfg.Space)
	if err != nil {
		return err
	}
	defer s.Close()

	for i, step := range cfg.Script {
		switch step.Op {
		case config.OpMalloc:
			addr, err := s.Malloc(step.Arg)
			if err != nil {
				logx.Warn("RUN", "step ", i, ": ", err)
				fmt.Fprintf(w, "malloc %d -> error: %v\n", step.Arg, err)
				continue
			}
			logx.Info("RUN", "step ", i, ": malloc ", step.Arg, " -> ", addr)
			fmt.Fprintf(w, "malloc %d -> %d\n", step.Arg, addr)
		case config.OpFree:
			if err := s.Free(step.Arg); err != nil {
				logx.Error("RUN", "step ", i, ": ", err)
				return errors.Wrapf(err, "step %d", i)
			}
			logx.Info("RUN", "step ", i, ": free ", step.Arg)
			fmt.Fprintf(w, "free %d\n", step.Arg)
		case config.OpDefrag:
			merged := s.Defrag()
			logx.Info("RUN", "step ", i, ": defrag merged ", merged)
			fmt.Fprintf(w, "defrag -> %d merged\n", merged)
		default:
			return errors.Wrapf(memlist.ErrInvalidArgument, "step %d: unknown op %q", i, step.Op)
		}
		if verbose {
			fmt.Fprintln(w, s)
		}
	}

	if asJSON {
		data, err := jsonx.MarshalIndent(s.Snapshot(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
