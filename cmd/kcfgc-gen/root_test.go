package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"kcfgc-gen/internal/config"
	"kcfgc-gen/internal/gen"
	"kcfgc-gen/internal/model"
)

const testModel = `
file: appearance
entries:
  - name: Title
    type: String
`

const testParams = `
ClassName = "Appearance"
Mutators = true
`

func writeInputs(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	modelPath := filepath.Join(dir, "appearance.yaml")
	paramsPath := filepath.Join(dir, "appearance.toml")

	require.NoError(t, os.WriteFile(modelPath, []byte(testModel), 0o644))
	require.NoError(t, os.WriteFile(paramsPath, []byte(testParams), 0o644))

	return modelPath, paramsPath
}

func execute(args ...string) (string, error) {
	var stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stderr.String(), err
}

func TestRunWritesSource(t *testing.T) {
	modelPath, paramsPath := writeInputs(t)
	out := filepath.Join(t.TempDir(), "generated")

	_, err := execute("-d", out, "--namespace", "App::Ui", modelPath, paramsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "appearance.cpp"))
	require.NoError(t, err)

	src := string(data)
	assert.Contains(t, src, "// This file is generated by kconfig_compiler_kf5 from appearance.kcfg.\n")
	assert.Contains(t, src, "#include \"appearance.h\"\n")
	assert.Contains(t, src, "namespace App {\nnamespace Ui {\n")
	assert.Contains(t, src, "QString Appearance::title() const\n{\n    return mTitle;\n}\n")
	assert.Contains(t, src, "void Appearance::setTitle( const QString & v )\n")
}

func TestRunExamples(t *testing.T) {
	tests := []struct {
		model, params, golden string
	}{
		{"appearance/appearance.yaml", "appearance/appearance.toml", "appearance.txtar"},
		{"settings/settings.toml", "settings/settings.yaml", "settings_dpointer.txtar"},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			out := t.TempDir()

			_, err := execute("-d", out,
				filepath.Join("..", "..", "examples", tt.model),
				filepath.Join("..", "..", "examples", tt.params))
			require.NoError(t, err)

			ar, err := txtar.ParseFile(filepath.Join("..", "..", "internal", "gen", "testdata", tt.golden))
			require.NoError(t, err)

			var want string
			for _, f := range ar.Files {
				if f.Name == "want.cpp" {
					want = string(f.Data)
				}
			}

			require.NotEmpty(t, want)

			base := filepath.Base(tt.params)
			got, err := os.ReadFile(filepath.Join(out, base[:len(base)-len(filepath.Ext(base))]+".cpp"))
			require.NoError(t, err)
			assert.Equal(t, want, string(got))
		})
	}
}

func TestRunDumpModel(t *testing.T) {
	modelPath, paramsPath := writeInputs(t)

	stderr, err := execute("-d", t.TempDir(), "--dump-model", modelPath, paramsPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Title")
}

func TestRunOpenFailure(t *testing.T) {
	modelPath, paramsPath := writeInputs(t)

	// A regular file where the output directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	dir := filepath.Join(blocker, "sub")
	stderr, err := execute("-d", dir, modelPath, paramsPath)
	require.Error(t, err)
	assert.NotContains(t, stderr, "Can not open", "directory creation fails first")

	outDir := t.TempDir()
	target := filepath.Join(outDir, "appearance.cpp")
	require.NoError(t, os.Mkdir(target, 0o755))

	stderr, err = execute("-d", outDir, modelPath, paramsPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gen.ErrOpenOutput))
	assert.Equal(t, "Can not open '"+target+"for writing.\n", stderr)
}

func TestRunRejectsBadInputs(t *testing.T) {
	modelPath, paramsPath := writeInputs(t)

	_, err := execute(modelPath)
	require.Error(t, err, "two arguments are required")

	_, err = execute("-d", t.TempDir(), filepath.Join(t.TempDir(), "model.json"), paramsPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnsupportedFormat))

	empty := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(empty, []byte("NameSpace = \"X\"\n"), 0o644))

	_, err = execute("-d", t.TempDir(), modelPath, empty)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidParameters))

	_, err = execute("-d", t.TempDir(), "--class-name", "Named", modelPath, empty)
	require.NoError(t, err, "class name supplied by flag")
}

func TestBannerName(t *testing.T) {
	s := &model.Schema{File: "appearance"}

	assert.Equal(t, "appearance", bannerName(config.Parameters{}, s))
	assert.Equal(t, "settings", bannerName(config.Parameters{File: "settings.kcfg"}, s))
}
