// cmd/compinv/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"compinv/internal/builder"
	"compinv/internal/config"
	"compinv/internal/scaffold"
	"compinv/internal/watch"
)

type appConfig struct {
	configFile string
	debug      bool
	unsafe     bool
}

const defaultConfigFile = "compinv.yaml"

func main() {
	appCfg := appConfig{}
	// Global flags
	flag.StringVar(&appCfg.configFile, "config", defaultConfigFile, "Path to the options file.")
	flag.BoolVar(&appCfg.debug, "debug", false, "Enable debug logging.")
	flag.BoolVar(&appCfg.unsafe, "unsafe", false, "Disable HTML sanitization. Allows all raw fragments.")
	flag.Usage = printHelp
	flag.Parse()

	if appCfg.debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(appCfg); err != nil {
		log.Error("Operation failed", "err", err)
		os.Exit(1)
	}
}

func run(appCfg appConfig) error {
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return nil
	}

	buildOpts := builder.BuildOptions{
		Unsafe: appCfg.unsafe,
		Debug:  appCfg.debug,
	}

	switch args[0] {
	case "build":
		buildCmd := flag.NewFlagSet("build", flag.ExitOnError)
		expand := buildCmd.Bool("expand", false, "Write one document per category plus an index.")
		storage := buildCmd.String("storage", "", "Override the storage path from the options file.")
		tmplPath := buildCmd.String("template", "", "Override the template path from the options file.")
		buildCmd.Parse(args[1:])

		opts, err := loadOptions(appCfg.configFile)
		if err != nil {
			return err
		}
		if *expand {
			opts.Expand = true
		}
		if *storage != "" {
			opts.Storage = *storage
		}
		if *tmplPath != "" {
			opts.Template = *tmplPath
		}

		return runBuild(opts, buildOpts)

	case "watch":
		opts, err := loadOptions(appCfg.configFile)
		if err != nil {
			return err
		}

		paths := []string{opts.Storage, opts.Template, appCfg.configFile}
		return watch.Run(paths, func() error {
			return runBuild(opts, buildOpts)
		})

	case "init":
		dir := "."
		if len(args) > 1 {
			dir = args[1]
		}
		if err := scaffold.Create(dir); err != nil {
			return err
		}
		log.Info("Project scaffolded", "dir", dir)
		log.Info("Run 'compinv build' inside the project directory.")
		return nil

	default:
		flag.Usage()
	}

	return nil
}

func runBuild(opts config.Options, buildOpts builder.BuildOptions) error {
	result, err := builder.Build(opts, buildOpts)
	if err != nil {
		return err
	}

	log.Info("Inventory built",
		"documents", result.Documents,
		"categories", result.Categories,
		"items", result.LengthUnique,
		"records", result.LengthTotal,
		"views", result.ViewCount,
	)
	return nil
}

// loadOptions falls back to the defaults when no options file exists at
// the default location; an explicitly named file must exist.
func loadOptions(path string) (config.Options, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == defaultConfigFile {
		log.Debug("No options file found, using defaults")
		return config.DefaultOptions(), nil
	}
	return config.Load(path)
}

func printHelp() {
	fmt.Println("compinv - build a static component inventory from collected records")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  compinv [global-flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build [options]    Read the storage document and write the inventory. Use 'compinv build -h' for options.")
	fmt.Println("  watch              Rebuild whenever the storage, template, or config changes")
	fmt.Println("  init [dir]         Create a starter project (config, template, sample storage)")
	fmt.Println()
	fmt.Println("Global Flags:")
	flag.PrintDefaults()
}
