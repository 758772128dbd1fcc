package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"kcfgc-gen/internal/config"
	"kcfgc-gen/internal/gen"
	"kcfgc-gen/internal/model"
)

type options struct {
	directory string
	verbose   bool
	logJSON   bool
	dumpModel bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "kcfgc-gen [flags] <model-file> <params-file>",
		Short: "Generate KConfigSkeleton accessor sources from an entry model",
		Long: `Generate the C++ accessor source of a configuration class.

The model file (.yaml, .yml or .toml) declares the entries, their types,
bounds, indexes and signals. The parameter file (.toml, .yaml or .yml) holds
the kcfgc settings: ClassName, NameSpace, Singleton, MemberVariables,
GlobalEnums, UseEnumTypes, GenerateProperties, CategoryLoggingName,
SourceIncludeFiles, Mutators and SourceExtension. Every setting can be
overridden through KCFGC_<KEY> environment variables.

The output is written to <directory>/<params base name>.<SourceExtension>.

Examples:
  kcfgc-gen appearance.yaml appearance.toml
  kcfgc-gen -d build/generated settings.toml settings.yaml
  kcfgc-gen --namespace App::Config --verbose model.yaml params.yaml`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, opts, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.directory, "directory", "d", ".", "Output directory")
	flags.BoolVar(&opts.verbose, "verbose", false, "Log every emitted entry")
	flags.BoolVar(&opts.logJSON, "log-json", false, "Log as JSON")
	flags.BoolVar(&opts.dumpModel, "dump-model", false, "Dump the loaded entry model to stderr")
	flags.String("namespace", "", "Override NameSpace")
	flags.String("class-name", "", "Override ClassName")

	_ = v.BindPFlag(config.KeyNameSpace, flags.Lookup("namespace"))
	_ = v.BindPFlag(config.KeyClassName, flags.Lookup("class-name"))

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, opts *options, modelPath, paramsPath string) error {
	logger, err := newLogger(opts.verbose, opts.logJSON)
	if err != nil {
		return errors.Wrap(err, "initializing logger")
	}

	defer func() { _ = logger.Sync() }()

	schema, diags, err := model.LoadFile(modelPath)
	if diags != nil {
		for _, d := range diags.Warnings {
			logger.Warn(d.String(), zap.String("file", modelPath))
		}

		for _, d := range diags.Infos {
			logger.Debug(d.String(), zap.String("file", modelPath))
		}
	}

	if err != nil {
		return err
	}

	params, err := config.LoadWithViper(v, paramsPath)
	if err != nil {
		return err
	}

	if opts.dumpModel {
		fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(schema))
	}

	base := strings.TrimSuffix(filepath.Base(paramsPath), filepath.Ext(paramsPath))
	fileName := base + "." + params.SourceExtension

	if err := gen.EnsureDir(opts.directory); err != nil {
		return err
	}

	w, err := gen.Create(bannerName(params, schema), opts.directory, fileName, params)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Can not open '%sfor writing.\n", filepath.Join(opts.directory, fileName))
		return err
	}
	defer w.Close()

	g := gen.NewGenerator(params, gen.WithLogger(logger), gen.WithHeader(base+".h"))
	if err := g.Generate(w, schema); err != nil {
		return err
	}

	if err := w.Save(); err != nil {
		return err
	}

	logger.Info("wrote source", zap.String("file", w.Path()), zap.Int("count", len(schema.Entries)))

	return nil
}

// bannerName is the schema name recorded in the banner, without its .kcfg
// extension.
func bannerName(params config.Parameters, schema *model.Schema) string {
	name := params.File
	if name == "" {
		name = schema.File
	}

	return strings.TrimSuffix(name, ".kcfg")
}

func newLogger(verbose, jsonOutput bool) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = level

		return cfg.Build()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true

	return cfg.Build()
}
