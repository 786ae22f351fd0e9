package pathglob

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathglob/internal/version"
	"github.com/arthur-debert/pathglob/pkg/cobrax/topics"
	"github.com/arthur-debert/pathglob/pkg/config"
	"github.com/arthur-debert/pathglob/pkg/filesystem"
	"github.com/arthur-debert/pathglob/pkg/logging"
)

//go:embed help
var helpFiles embed.FS

// rootFlags holds the values bound to the root command's flags
type rootFlags struct {
	verbosity  int
	configFile string
	format     string
	null       bool
	showMode   bool
	policy     string
}

// overrides maps every flag the user set to its config key
func (f *rootFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	set := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		set["output.format"] = f.format
	}
	if flags.Changed("null") {
		set["output.null"] = f.null
	}
	if flags.Changed("show-mode") {
		set["output.show_mode"] = f.showMode
	}
	if flags.Changed("errors") {
		set["errors.policy"] = f.policy
	}
	return set
}

// loadConfig reads the layered configuration for cmd
func (f *rootFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: f.configFile,
		Overrides:  f.overrides(cmd),
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "pathglob [flags] PATTERN...",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity, cmd.ErrOrStderr())
			logging.LogCommand(cmd.Name(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := newRunner(filesystem.NewOS(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return r.run(args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", MsgFlagConfig)

	rootCmd.Flags().StringVarP(&flags.format, "format", "f", "auto", MsgFlagFormat)
	rootCmd.Flags().BoolVarP(&flags.null, "null", "0", false, MsgFlagNull)
	rootCmd.Flags().BoolVarP(&flags.showMode, "show-mode", "m", false, MsgFlagShowMode)
	rootCmd.Flags().StringVarP(&flags.policy, "errors", "e", "report", MsgFlagErrors)

	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"auto", "term", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("errors", cobra.FixedCompletions(
		[]string{"report", "ignore", "abort"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd(flags))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if helpFS, err := fs.Sub(helpFiles, "help"); err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		if _, err := topics.InitializeWithOptions(rootCmd, helpFS, opts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}
