package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	fsAdapter "github.com/bft-labs/fileorg/internal/adapters/fs"
	"github.com/bft-labs/fileorg/internal/cliconfig"
	"github.com/bft-labs/fileorg/internal/domain"
	"github.com/bft-labs/fileorg/internal/logging"
	"github.com/bft-labs/fileorg/internal/render"
	"github.com/bft-labs/fileorg/internal/watch"
	"github.com/bft-labs/fileorg/pkg/organizer"
)

const longHelp = `Reorder, renumber and rename a batch of files, then move or copy them
into a destination directory.

Files are pre-ordered (alphabetically, reverse, by creation time or by a
number found in their names), optionally renamed to a zero-padded sequence
with a custom token, stripped of characters and lowercased. Existing files
in the destination are left alone unless --replace is given.`

var exampleUsage = strings.TrimSpace(`
  fileorg --origin ~/Downloads --destination ~/Pictures/trip IMG_1.jpg IMG_2.jpg
  fileorg --origin scans --destination archive --all --order numeric --pattern _ --numbering --digits 3 --token page-
  fileorg plan --config $HOME/.fileorg/config.toml --all
  fileorg watch --origin inbox --destination sorted --lowercase
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app holds state shared by all subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	all     bool
	log     zerolog.Logger
}

func main() {
	a := &app{
		cfg: cliconfig.DefaultConfig(),
		log: logging.New(logging.Options{}),
	}

	root := a.rootCommand()
	if err := root.Execute(); err != nil {
		if errors.Is(err, organizer.ErrNoSelection) {
			fmt.Fprintln(os.Stderr, "No selected files to move!")
			os.Exit(2)
		}
		a.log.Error().Err(err).Msg("fileorg")
		os.Exit(1)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fileorg [flags] [file...]",
		Short:         "Reorder, rename and move or copy a batch of files",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runOrganize,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.fileorg/config.toml)")
	f.StringVar(&a.cfg.Origin, "origin", a.cfg.Origin, "directory containing the selected files")
	f.StringVar(&a.cfg.Destination, "destination", a.cfg.Destination, "directory to move or copy files into")
	f.StringVar(&a.cfg.Order, "order", a.cfg.Order, "pre-order: alpha, reverse, ctime or numeric")
	f.StringVar(&a.cfg.Pattern, "pattern", a.cfg.Pattern, "numeric order: text next to the number in each name")
	f.BoolVar(&a.cfg.NumberBeforePattern, "number-before-pattern", a.cfg.NumberBeforePattern, "numeric order: the number precedes the pattern")
	f.BoolVar(&a.cfg.Numbering, "numbering", a.cfg.Numbering, "rename files to a zero-padded sequence")
	f.StringVar(&a.cfg.Digits, "digits", a.cfg.Digits, "sequence width (falls back to 4 when invalid)")
	f.StringVar(&a.cfg.Placement, "placement", a.cfg.Placement, "sequence position relative to the token: after or before")
	f.StringVar(&a.cfg.Token, "token", a.cfg.Token, "custom text combined with the sequence number")
	f.BoolVar(&a.cfg.Remove, "remove", a.cfg.Remove, "strip --remove-chars from new names")
	f.StringVar(&a.cfg.RemoveChars, "remove-chars", a.cfg.RemoveChars, "characters to strip from new names")
	f.BoolVar(&a.cfg.Lowercase, "lowercase", a.cfg.Lowercase, "lowercase new names")
	f.BoolVar(&a.cfg.Duplicate, "duplicate", a.cfg.Duplicate, "copy files instead of moving them")
	f.BoolVar(&a.cfg.Replace, "replace", a.cfg.Replace, "replace files that already exist in the destination")
	f.StringVar(&a.cfg.Report, "report", a.cfg.Report, "write a JSON report of every transfer to this path")
	f.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	f.DurationVar(&a.cfg.Debounce, "debounce", a.cfg.Debounce, "watch: quiet period before organizing")

	root.Flags().BoolVar(&a.all, "all", false, "select every regular file in the origin")

	planCmd := &cobra.Command{
		Use:   "plan [flags] [file...]",
		Short: "Print the transfer plan without touching any file",
		RunE:  a.runPlan,
	}
	planCmd.Flags().BoolVar(&a.all, "all", false, "select every regular file in the origin")

	listCmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List the regular files in a directory (default: origin)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runList,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Organize every file that lands in the origin",
		Args:  cobra.NoArgs,
		RunE:  a.runWatch,
	}

	root.AddCommand(planCmd, listCmd, watchCmd)
	return root
}

// loadConfig applies the config file, then FILEORG_* variables, underneath
// any flags set on the command line.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	a.log = logging.New(logging.Options{Level: a.cfg.LogLevel})
	return nil
}

func (a *app) loadValidConfig(cmd *cobra.Command) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}
	return a.cfg.Validate()
}

func (a *app) newOrganizer() *organizer.Organizer {
	opts := []organizer.Option{organizer.WithLogger(a.log)}
	if a.cfg.Report != "" {
		opts = append(opts, organizer.WithReportRepository(fsAdapter.NewReportFileRepository(a.cfg.Report)))
	}
	return organizer.New(opts...)
}

// selection returns the files named on the command line, plus every file
// in the origin when --all is set. Each name appears once.
func (a *app) selection(o *organizer.Organizer, args []string) ([]string, error) {
	if !a.all {
		return slices.Compact(slices.Sorted(slices.Values(args))), nil
	}
	names, err := o.ListFiles(a.cfg.Origin)
	if err != nil {
		return nil, err
	}
	names = append(names, args...)
	slices.Sort(names)
	return slices.Compact(names), nil
}

func (a *app) runOrganize(cmd *cobra.Command, args []string) error {
	if err := a.loadValidConfig(cmd); err != nil {
		return err
	}
	o := a.newOrganizer()

	files, err := a.selection(o, args)
	if err != nil {
		return err
	}
	req, err := a.cfg.Request(files)
	if err != nil {
		return err
	}

	report, err := o.Organize(req)
	if len(report.Results) > 0 {
		render.Report(cmd.OutOrStdout(), report)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Status(report))
	return nil
}

func (a *app) runPlan(cmd *cobra.Command, args []string) error {
	if err := a.loadValidConfig(cmd); err != nil {
		return err
	}
	o := a.newOrganizer()

	files, err := a.selection(o, args)
	if err != nil {
		return err
	}
	req, err := a.cfg.Request(files)
	if err != nil {
		return err
	}

	plan, err := o.Plan(req)
	if err != nil {
		return err
	}
	render.Plan(cmd.OutOrStdout(), plan)
	return nil
}

// runList does not need a destination, so it skips full validation.
func (a *app) runList(cmd *cobra.Command, args []string) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}

	dir := a.cfg.Origin
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		return fmt.Errorf("%w: origin is required", domain.ErrInvalidConfig)
	}
	names, err := a.newOrganizer().ListFiles(dir)
	if err != nil {
		return err
	}
	render.Listing(cmd.OutOrStdout(), dir, names)
	return nil
}

func (a *app) runWatch(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}
	if err := a.cfg.ValidateWatch(); err != nil {
		return err
	}

	o := a.newOrganizer()
	out := cmd.OutOrStdout()

	handler := func(ctx context.Context) error {
		files, err := o.ListFiles(a.cfg.Origin)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return nil
		}
		req, err := a.cfg.Request(files)
		if err != nil {
			return err
		}
		report, err := o.Organize(req)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s (%s)\n", render.Status(report), render.Summary(report))
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watch.New(watch.Config{
		Dir:            a.cfg.Origin,
		Debounce:       a.cfg.Debounce,
		RunImmediately: true,
	}, handler, a.log)

	if err := w.Run(ctx); err != nil {
		return err
	}
	a.log.Info().Msg("watch stopped")
	return nil
}
