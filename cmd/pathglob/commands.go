package pathglob

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pathglob/internal/version"
	"github.com/arthur-debert/pathglob/pkg/config"
)

// ManHeader is shared by the man command and cmd/pathglob-manpage
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "PATHGLOB",
		Section: "1",
		Source:  "pathglob " + version.Version,
		Manual:  "pathglob manual",
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), version.Info())
			return err
		},
	}
}

func newGenConfigCmd(flags *rootFlags) *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !effective {
				_, err := io.WriteString(out, config.GenerateConfigContent())
				return err
			}

			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			content, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(content)
			return err
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd.Name() != "help" || helpCmd.Run == nil {
				return fmt.Errorf("help command not found")
			}
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script for shell
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unknown shell: %s (supported: bash, zsh, fish, powershell)", shell)
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir != "" {
				return doc.GenManTree(cmd.Root(), ManHeader(), dir)
			}
			return doc.GenMan(cmd.Root(), ManHeader(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagManDir)
	return cmd
}
