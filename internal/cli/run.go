package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rewatch-io/rewatch/internal/cliutil"
	"github.com/rewatch-io/rewatch/internal/config"
	"github.com/rewatch-io/rewatch/internal/proc"
	"github.com/rewatch-io/rewatch/internal/registry"
	"github.com/rewatch-io/rewatch/internal/reloader"
)

// runOverrides carries flag values that take precedence over the config
// file. Nil/empty fields mean "not provided".
type runOverrides struct {
	Interval *time.Duration
	Include  []string
	Exclude  []string
	EnvFile  string
}

func newRunCmd() *cobra.Command {
	var (
		configFile string
		interval   time.Duration
		include    []string
		exclude    []string
		envFile    string
		logJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "run [flags] -- target [args...]",
		Short: "Run a command under file-watching supervision",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// A child launched by the supervisor replaces itself with
			// the target instead of starting a second watch loop.
			if proc.Supervised() {
				return proc.RunTarget(args, os.Environ())
			}

			cfg, err := config.Load(configFile, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			overrides := runOverrides{
				Include: include,
				Exclude: exclude,
				EnvFile: envFile,
			}
			if cmd.Flags().Changed("interval") {
				overrides.Interval = &interval
			}
			if err := applyOverrides(cfg, overrides); err != nil {
				return err
			}

			return runSupervisor(cmd, cfg, logJSON)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "rewatch.yaml", "Path to rewatch manifest")
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "Poll interval for watched files")
	cmd.Flags().StringArrayVarP(&include, "watch", "w", nil, "Glob pattern of files to watch (repeatable)")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "Glob pattern of files to ignore (repeatable)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Env file merged into the child environment")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Emit watch-loop events as JSON")

	return cmd
}

// applyOverrides folds flag values into the loaded config and re-validates
// the result. Env-file entries from the flag never shadow inline config
// values.
func applyOverrides(cfg *config.Config, overrides runOverrides) error {
	if overrides.Interval != nil {
		cfg.Interval.Duration = *overrides.Interval
	}
	if len(overrides.Include) > 0 {
		cfg.Watch.Include = append([]string(nil), overrides.Include...)
	}
	if len(overrides.Exclude) > 0 {
		cfg.Watch.Exclude = append([]string(nil), overrides.Exclude...)
	}
	if overrides.EnvFile != "" {
		fileEnv, err := godotenv.Read(overrides.EnvFile)
		if err != nil {
			return fmt.Errorf("env-file: load %q: %w", overrides.EnvFile, err)
		}
		if cfg.Child.Env == nil {
			cfg.Child.Env = make(map[string]string, len(fileEnv))
		}
		for k, v := range fileEnv {
			if _, exists := cfg.Child.Env[k]; !exists {
				cfg.Child.Env[k] = v
			}
		}
	}
	return cfg.Validate()
}

func runSupervisor(cmd *cobra.Command, cfg *config.Config, logJSON bool) error {
	spec, err := proc.SelfSpec()
	if err != nil {
		return err
	}
	spec.Dir = cfg.Child.ResolvedWorkdir

	launcher := proc.NewLauncher(spec, cfg.Child.Env)
	reg := registry.NewGlobRegistry(cfg.Child.ResolvedWorkdir, cfg.Watch.Include, cfg.Watch.Exclude)

	watchdog := reloader.New(reloader.Options{
		Files:    registry.NewEnumerator(reg, cfg.Watch.Extensions),
		Start:    func() (reloader.Handle, error) { return launcher.Start() },
		Killer:   proc.TreeTerminator{},
		Interval: cfg.Interval.Duration,
		OnEvent:  eventLogger(cmd.ErrOrStderr(), logJSON),
	})
	return watchdog.Run(cmd.Context())
}

func eventLogger(out io.Writer, logJSON bool) func(reloader.Event) {
	if logJSON {
		enc := json.NewEncoder(out)
		return func(event reloader.Event) {
			cliutil.EncodeLogEvent(enc, out, event)
		}
	}
	return func(event reloader.Event) {
		fmt.Fprintf(out, "rewatch: %s\n", cliutil.FormatLogEvent(event))
	}
}
