package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	tfcloader "github.com/hellenic-development/tfc-loader"
	"github.com/hellenic-development/tfc-loader/pkg/diag"
	"github.com/hellenic-development/tfc-loader/pkg/formatter"
	"github.com/hellenic-development/tfc-loader/pkg/identifier"
	"github.com/hellenic-development/tfc-loader/pkg/loader"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = tfcloader.Version

var (
	assetDir   string
	outputDir  string
	configFile string
	category   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tfc-loader",
		Short: "Resolve and load resources from a mod asset tree",
		Long:  "A tool to resolve resource identifiers, export textures and animations, and load JSON documents for documentation generation",
	}

	rootCmd.PersistentFlags().StringVarP(&assetDir, "assets", "a", "", "Root of the mod checkout (contains src/main/resources)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Documentation output directory; images go to <output>/../_images")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file with asset_dir and output_dir")

	resolveCmd := &cobra.Command{
		Use:   "resolve <identifier>...",
		Short: "Print where identifiers resolve to",
		Args:  cobra.MinimumNArgs(1),
		Run:   runResolve,
	}
	resolveCmd.Flags().StringVar(&category, "category", "", "Resolve as a document of this category instead of a texture ("+categoryNames()+")")

	textureCmd := &cobra.Command{
		Use:   "texture <identifier>...",
		Short: "Load textures and save them to the images directory",
		Args:  cobra.MinimumNArgs(1),
		Run:   runTexture,
	}

	animateCmd := &cobra.Command{
		Use:   "animate <name> <frame>...",
		Short: "Combine textures into an animated GIF",
		Args:  cobra.MinimumNArgs(2),
		Run:   runAnimate,
	}

	documentCmd := &cobra.Command{
		Use:   "document <category> <identifier>",
		Short: "Load and print a JSON document (" + categoryNames() + ")",
		Args:  cobra.ExactArgs(2),
		Run:   runDocument,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tfc-loader version %s\n", version)
		},
	}

	rootCmd.AddCommand(resolveCmd, textureCmd, animateCmd, documentCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func categoryNames() string {
	names := make([]string, 0, len(loader.Categories))
	for _, c := range loader.Categories {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

func fatalf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(color.Error, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// openLoader merges the config file with flags (flags win) and opens the loader.
func openLoader() *loader.Loader {
	opts := tfcloader.Options{
		AssetDir:  assetDir,
		OutputDir: outputDir,
		Logger:    newCLILogger(),
	}

	if configFile != "" {
		fileOpts, err := tfcloader.LoadConfig(configFile)
		if err != nil {
			fatalf("%v", err)
		}
		opts = opts.Merge(fileOpts)
	}

	l, err := tfcloader.Open(opts)
	if err != nil {
		fatalf("%v", err)
	}
	return l
}

func runResolve(cmd *cobra.Command, args []string) {
	l := openLoader()

	var c loader.Category
	if category != "" {
		var ok bool
		if c, ok = loader.LookupCategory(category); !ok {
			fatalf("unknown category %q (must be one of %s)", category, categoryNames())
		}
	}

	rows := make([]formatter.Resolution, 0, len(args))
	for _, id := range args {
		domain, relPath, err := identifier.Split(id)
		if err != nil {
			fatalf("%v", err)
		}

		file := l.TexturePath(domain, relPath)
		if category != "" {
			file = l.DocumentPath(domain, relPath, c.Type, c.Root)
		}
		rows = append(rows, formatter.Resolution{
			Identifier: id,
			Domain:     domain,
			Path:       relPath,
			File:       file,
		})
	}

	fmt.Print(formatter.ToMarkdown(rows))
}

func runTexture(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	l := openLoader()
	ctx := context.Background()

	for _, id := range args {
		rel, img, err := l.LoadImage(ctx, id)
		if err != nil {
			os.Exit(1) // already reported
		}
		ref, err := l.SaveImage(ctx, id, img)
		if err != nil {
			os.Exit(1)
		}
		green.Printf("✓ %s\n", rel)
		fmt.Println(formatter.ImageEmbed("", ref))
	}
}

func runAnimate(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	l := openLoader()
	ctx := context.Background()

	name, frameIDs := args[0], args[1:]
	frames := make([]image.Image, 0, len(frameIDs))
	for _, id := range frameIDs {
		_, img, err := l.LoadImage(ctx, id)
		if err != nil {
			os.Exit(1)
		}
		frames = append(frames, img)
	}

	ref, err := l.SaveAnimation(ctx, name, frames)
	if err != nil {
		os.Exit(1)
	}
	green.Printf("✓ %d frame(s)\n", len(frames))
	fmt.Println(formatter.ImageEmbed("", ref))
}

func runDocument(cmd *cobra.Command, args []string) {
	c, ok := loader.LookupCategory(args[0])
	if !ok {
		fatalf("unknown category %q (must be one of %s)", args[0], categoryNames())
	}
	l := openLoader()

	doc, err := l.LoadCategory(context.Background(), args[1], c)
	if err != nil {
		var de *diag.Error
		if errors.As(err, &de) && de.Muted() {
			return // absent third-party resource, skipped
		}
		os.Exit(1)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(string(out))
}

// cliLogger implements tfcloader.Logger with colored output. It writes to
// stderr so command output on stdout stays machine-readable.
type cliLogger struct {
	out io.Writer
}

func newCLILogger() *cliLogger {
	return &cliLogger{out: color.Error}
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.out, "✗ "+format+"\n", args...)
}
