package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tympanix/iconview/internal/config"
	"github.com/tympanix/iconview/internal/operations"
	"github.com/tympanix/iconview/internal/util"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	status := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(int(status))
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) operations.Status {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, operations.UserMessage(err))
		return operations.StatusFor(err)
	}
	return operations.StatusSuccess
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.New()
	var quietMode bool
	var verboseMode bool
	var configFile string

	renderOpts := &operations.RenderOptions{Stdout: stdout}
	serveOpts := &operations.ServeOptions{}

	var rootCmd = &cobra.Command{
		Use:           "iconview",
		Short:         "Browse the images in a folder as a grid",
		Long:          "Browse the images in a folder as a grid\n\nSupported files: .png, .jpg, .jpeg, .svg, .ico (any case)\n\nExit codes:\n  0  - Success\n  1  - General error\n  64 - No folder selected\n  66 - No icons found",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := cfg.LoadFile(configFile); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("title") {
				cfg.Title, _ = cmd.Flags().GetString("title")
			}
			if cmd.Flags().Changed("theme") {
				cfg.Theme, _ = cmd.Flags().GetString("theme")
			}
			if cmd.Flags().Changed("columns") {
				cfg.Columns, _ = cmd.Flags().GetInt("columns")
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr, _ = cmd.Flags().GetString("addr")
			}

			logWriter := stdout
			if cmd.Name() == "render" && renderOpts.WritesToStdout() {
				logWriter = stderr
			}
			logger := util.NewLoggerForMode(logWriter, quietMode, verboseMode)

			renderOpts.Logger = logger
			renderOpts.QuietMode = quietMode
			renderOpts.VerboseMode = verboseMode
			serveOpts.Logger = logger
			serveOpts.QuietMode = quietMode
			serveOpts.VerboseMode = verboseMode
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a TOML file with title, theme, columns and addr settings")
	rootCmd.PersistentFlags().String("title", "", "Page title (defaults to ICONVIEW_TITLE env var or 'Icons viewer')")
	rootCmd.PersistentFlags().String("theme", "", "Initial theme: light or dark (defaults to ICONVIEW_THEME env var or 'dark')")
	rootCmd.PersistentFlags().Int("columns", 0, "Number of grid columns (defaults to ICONVIEW_COLUMNS env var or 8)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress all output")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "Enable verbose output")

	var renderCmd = &cobra.Command{
		Use:   "render <folder>",
		Short: "Write the icons page as a standalone HTML file",
		Long:  "Write the icons page as a standalone HTML file\n\nImages are referenced by file:// URI. Without --output the page is written to stdout.\n\nExit codes:\n  0  - Success\n  1  - General error\n  64 - No folder selected\n  66 - No icons found",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return operations.Render(folderArg(args), cfg, renderOpts)
		},
	}
	renderCmd.Flags().StringVarP(&renderOpts.Output, "output", "o", "", "File to write the page to ('-' or empty for stdout)")
	renderCmd.Flags().StringVarP(&renderOpts.GlobPattern, "glob", "g", "", "Glob pattern(s) to narrow the icons (e.g., 'icons/**', 'icons/**,!icons/legacy/**')")

	var serveCmd = &cobra.Command{
		Use:   "serve <folder>",
		Short: "Serve the icons page on a local HTTP port",
		Long:  "Serve the icons page on a local HTTP port\n\nOnly files found by the scan are served. Stop with Ctrl+C.\n\nExit codes:\n  0  - Success\n  1  - General error\n  64 - No folder selected\n  66 - No icons found",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return operations.Serve(cmd.Context(), folderArg(args), cfg, serveOpts)
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (defaults to ICONVIEW_ADDR env var or '127.0.0.1:0')")
	serveCmd.Flags().BoolVar(&serveOpts.Open, "open", false, "Open the viewer in the default browser")
	serveCmd.Flags().StringVarP(&serveOpts.GlobPattern, "glob", "g", "", "Glob pattern(s) to narrow the icons (e.g., 'icons/**', 'icons/**,!icons/legacy/**')")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "Print the version number of iconview",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "iconview version %s\n", version)
		},
	}

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func folderArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
