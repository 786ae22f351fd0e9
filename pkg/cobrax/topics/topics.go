// Package topics adds topic-based help to a cobra command tree.
//
// Topics are markdown or text documents read from an fs.FS, usually an
// embedded directory, and shown through "help <topic>" or "--help <topic>".
// Files named option-<flag> are also found by the flag name, so
// "help --null" shows option-null.md.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathglob/pkg/logging"
)

const optionPrefix = "option-"

// TopicManager holds the topics found in a filesystem
type TopicManager struct {
	fsys         fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic is one help document
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Extensions lists the file extensions read as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a TopicManager over fsys with default options
func New(fsys fs.FS) *TopicManager {
	return NewWithOptions(fsys, Options{})
}

// NewWithOptions creates a TopicManager over fsys
func NewWithOptions(fsys fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	return tm
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// scanTopics loads every supported file under the filesystem root
func (tm *TopicManager) scanTopics() error {
	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if !tm.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
}

// GetTopic looks a topic up by name or by flag name
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics[optionPrefix+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the formatted content of topic
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, path.Ext(topic.Path))
}

// PrintList writes the topic index for program to w
func (tm *TopicManager) PrintList(w io.Writer, program string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

// Initialize installs topic help on rootCmd with default options
func Initialize(rootCmd *cobra.Command, fsys fs.FS) (*TopicManager, error) {
	return InitializeWithOptions(rootCmd, fsys, Options{})
}

// InitializeWithOptions replaces the help command and help function of
// rootCmd with versions that also know about topics
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := NewWithOptions(fsys, opts)
	if err := tm.scanTopics(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	log := logging.GetLogger("topics")
	log.Debug().
		Int("count", len(tm.topics)).
		Msg("Help topics loaded")

	tm.originalHelp = rootCmd.HelpFunc()
	program := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + program + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + program + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return
			}
			if args[0] == "topics" {
				tm.PrintList(out, program)
				return
			}
			if topic, ok := tm.GetTopic(args[0]); ok {
				fmt.Fprint(out, tm.Render(topic))
				return
			}
			if target, _, err := rootCmd.Find(args); err == nil && target != nil {
				tm.originalHelp(target, args)
				return
			}
			tm.originalHelp(rootCmd, args)
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := tm.GetTopic(args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
				return
			}
		}
		tm.originalHelp(cmd, args)
	})

	return tm, nil
}
