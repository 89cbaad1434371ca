package tfcloader

import (
	"errors"
	"fmt"
	"os"

	"github.com/hellenic-development/tfc-loader/pkg/diag"
	"github.com/hellenic-development/tfc-loader/pkg/loader"

	"gopkg.in/yaml.v3"
)

// Version is the release of the loader and its CLI.
const Version = "0.1.0"

// Options configures a Loader.
type Options struct {
	AssetDir  string `yaml:"asset_dir"`  // root of the mod checkout
	OutputDir string `yaml:"output_dir"` // documentation output directory
	Logger    Logger `yaml:"-"`          // nil = no logging
}

// Logger receives progress messages and diagnostics. A nil Logger means
// silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// LoadConfig reads Options from a YAML file with the keys asset_dir and
// output_dir.
func LoadConfig(path string) (Options, error) {
	var opts Options

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}

	return opts, nil
}

// Merge returns o with every empty field filled from fallback.
func (o Options) Merge(fallback Options) Options {
	if o.AssetDir == "" {
		o.AssetDir = fallback.AssetDir
	}
	if o.OutputDir == "" {
		o.OutputDir = fallback.OutputDir
	}
	if o.Logger == nil {
		o.Logger = fallback.Logger
	}
	return o
}

// Open validates opts and returns a Loader that reports diagnostics to
// opts.Logger: muted errors as warnings, fatal ones as errors.
func Open(opts Options) (*loader.Loader, error) {
	if opts.AssetDir == "" {
		return nil, errors.New("asset directory is required")
	}
	if opts.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}

	info, err := os.Stat(opts.AssetDir)
	if err != nil {
		return nil, fmt.Errorf("asset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset directory %q is not a directory", opts.AssetDir)
	}

	opts.logInfo("Assets: %s", opts.AssetDir)
	opts.logInfo("Output: %s", opts.OutputDir)

	var reporter diag.Reporter = diag.Discard
	if opts.Logger != nil {
		reporter = diag.LoggerReporter{Logger: opts.Logger}
	}

	return loader.New(opts.AssetDir, opts.OutputDir, reporter), nil
}
