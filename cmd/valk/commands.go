package valk

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/valk/internal/version"
	"github.com/arthur-debert/valk/pkg/catalog"
	"github.com/arthur-debert/valk/pkg/config"
	"github.com/arthur-debert/valk/pkg/display"
	"github.com/arthur-debert/valk/pkg/fetch"
	"github.com/arthur-debert/valk/pkg/filesystem"
	"github.com/arthur-debert/valk/pkg/format"
	"github.com/arthur-debert/valk/pkg/logging"
	"github.com/arthur-debert/valk/pkg/menu"
	"github.com/arthur-debert/valk/pkg/output"
	"github.com/arthur-debert/valk/pkg/prompt"
	"github.com/arthur-debert/valk/pkg/scaffold"
	"github.com/arthur-debert/valk/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// skipConfig marks commands that must work even with a broken config file
const skipConfig = "skip-config"

// configFlags maps command flags onto the config keys they override
var configFlags = map[string]string{
	"atomic": "gitignore.atomic",
	"url":    "gitignore.url",
}

// Options replaces the pieces of the environment tests need to control.
// Zero values mean the working directory and a terminal-aware prompter.
type Options struct {
	Fs       afero.Fs
	Prompter prompt.Prompter
}

type app struct {
	opts Options

	verbosity  int
	noColor    bool
	configPath string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command on top of opts
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	initTemplateFormatting()

	if opts.Fs == nil {
		opts.Fs = filesystem.NewOS()
	}
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:               "valk",
		Short:             MsgRootShort,
		Long:              MsgRootLong,
		Version:           version.Version,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newKeysCmd(a))
	rootCmd.AddCommand(newCreateCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	logging.SetupLogger(a.verbosity)
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	if a.noColor || styles.ColorDisabledByEnv() {
		a.noColor = true
		styles.DisableColor()
	}

	if cmd.Annotations[skipConfig] != "" {
		return nil
	}

	cfg, err := config.Load(config.LoadOptions{
		Path:      a.configPath,
		Overrides: flagOverrides(cmd),
	})
	if err != nil {
		return err
	}

	if path := cfg.Display.Styles; path != "" {
		if err := styles.LoadStyles(path); err != nil {
			return fmt.Errorf(MsgErrStyles, path, err)
		}
	}

	a.cfg = cfg
	return nil
}

func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	for name, key := range configFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if f.Value.Type() == "bool" {
			overrides[key] = f.Value.String() == "true"
		} else {
			overrides[key] = f.Value.String()
		}
	}
	return overrides
}

func (a *app) sink(cmd *cobra.Command) *output.Console {
	return output.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.noColor)
}

func (a *app) renderer(sink output.Sink) *display.Renderer {
	palette := format.StyledPalette()
	if a.noColor {
		palette = format.PlainPalette()
	}
	return display.NewRenderer(sink, format.New(palette))
}

func (a *app) writer(sink output.Sink) *scaffold.Writer {
	client := fetch.New(fetch.Options{
		UserAgent: a.cfg.Gitignore.UserAgent,
		Timeout:   a.cfg.Fetch.Timeout,
		ChunkSize: a.cfg.Fetch.ChunkSize,
	})
	return scaffold.NewWriter(a.opts.Fs, client, sink, a.cfg)
}

func (a *app) actions(cmd *cobra.Command, sink output.Sink) *menu.Actions {
	return menu.NewActions(cmd.Context(), a.renderer(sink), a.writer(sink))
}

func (a *app) prompter(cmd *cobra.Command) prompt.Prompter {
	if a.opts.Prompter != nil {
		return a.opts.Prompter
	}
	return prompt.Default(cmd.InOrStdin(), cmd.OutOrStdout())
}

func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	sink := a.sink(cmd)
	return menu.NewController(a.prompter(cmd), sink).Run(a.actions(cmd, sink))
}

func newKeysCmd(a *app) *cobra.Command {
	var all, markdown bool

	cmd := &cobra.Command{
		Use:       "keys [category]",
		Short:     MsgKeysShort,
		Long:      MsgKeysLong,
		Example:   MsgKeysExample,
		GroupID:   "core",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: categoryKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := a.sink(cmd)
			controller := menu.NewController(nil, sink)

			var selected []catalog.Category
			if len(args) == 1 && !all {
				category, err := catalog.ParseCategory(args[0])
				if err != nil {
					return controller.Settle(err)
				}
				selected = []catalog.Category{category}
			} else {
				selected = catalog.Categories()
			}

			if markdown {
				return a.renderMarkdown(sink, selected)
			}
			if len(selected) > 1 {
				return a.renderer(sink).RenderAll()
			}
			return controller.Dispatch(menu.KeybindingSelection{Category: selected[0]}, a.actions(cmd, sink))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	cmd.Flags().BoolVar(&markdown, "markdown", false, MsgFlagMarkdown)

	return cmd
}

func (a *app) renderMarkdown(sink output.Sink, categories []catalog.Category) error {
	var b strings.Builder
	for i, c := range categories {
		md, err := display.Markdown(c)
		if err != nil {
			return err
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(md)
	}

	r := display.NewMarkdownRenderer()
	r.Style = a.cfg.Display.MarkdownStyle
	if a.noColor {
		r.Style = "notty"
	}

	rendered, err := r.Render(b.String())
	if err != nil {
		return err
	}
	sink.Line(strings.TrimRight(rendered, "\n"))
	return nil
}

func categoryKeys() []string {
	var keys []string
	for _, c := range catalog.Categories() {
		keys = append(keys, string(c))
	}
	return keys
}

func newCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "create <gitignore-js|format-on-save>",
		Short:     MsgCreateShort,
		Long:      MsgCreateLong,
		Example:   MsgCreateExample,
		GroupID:   "core",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"gitignore-js", "format-on-save"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := a.sink(cmd)
			controller := menu.NewController(nil, sink)

			file, err := catalog.ParseConfigFile(args[0])
			if err != nil {
				return controller.Settle(err)
			}
			return controller.Dispatch(menu.ConfigFileSelection{File: file}, a.actions(cmd, sink))
		},
	}

	cmd.Flags().Bool("atomic", false, MsgFlagAtomic)
	cmd.Flags().String("url", "", MsgFlagURL)

	return cmd
}

func newGenConfigCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := a.sink(cmd)

			if write {
				result, err := config.WriteDefault(config.UserConfigPath())
				if err != nil {
					return err
				}
				if result.Written {
					sink.Success(fmt.Sprintf(MsgConfigWritten, result.Path))
				} else {
					sink.Warn(fmt.Sprintf(MsgConfigExists, result.Path))
				}
				return nil
			}

			data, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			sink.Line(strings.TrimRight(string(data), "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		GroupID:     "misc",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
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
		GroupID:               "misc",
		Annotations:           map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:         "man",
		Short:       MsgManShort,
		GroupID:     "misc",
		Args:        cobra.NoArgs,
		Hidden:      true,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "VALK",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManPagesWritten+"\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)

	return cmd
}
