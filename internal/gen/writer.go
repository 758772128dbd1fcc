package gen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"kcfgc-gen/internal/config"
)

// GeneratorName is recorded in the banner of every generated file.
const GeneratorName = "kconfig_compiler_kf5"

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrOpenOutput marks failures to open the output destination.
var ErrOpenOutput = errors.New("cannot open output for writing")

// ScopeFinalizer selects what follows the closing brace of a scope.
type ScopeFinalizer int

const (
	// FinalizerNone ends the scope with a bare brace.
	FinalizerNone ScopeFinalizer = iota
	// FinalizerSemicolon terminates scopes that are declarations (class, struct, enum).
	FinalizerSemicolon
)

// Writer is the stateful text sink of one generation run. It owns the
// indentation level and the open destination.
//
// Writes are buffered and never fail individually; the first write error is
// reported by Save.
type Writer struct {
	out    *bufio.Writer
	closer io.Closer
	closed bool
	err    error

	indentLevel int
	inputFile   string
	path        string
	params      config.Parameters
}

// NewWriter returns a Writer emitting to out. inputFile is the originating
// schema file, only used for the banner. Save flushes but does not close out.
func NewWriter(out io.Writer, inputFile string, params config.Parameters) *Writer {
	return &Writer{
		out:       bufio.NewWriter(out),
		inputFile: inputFile,
		params:    params,
	}
}

// Create opens fileName (relative to baseDir unless absolute) for writing
// and returns a Writer on it. The caller must call Save or Close; both are
// safe to call more than once.
func Create(inputFile, baseDir, fileName string, params config.Parameters) (*Writer, error) {
	path := fileName
	if baseDir != "" && !filepath.IsAbs(fileName) {
		path = filepath.Join(baseDir, fileName)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, errors.WithHint(
			errors.Mark(errors.Wrapf(err, "can not open %s for writing", path), ErrOpenOutput),
			"check that the output directory exists and is writable")
	}

	w := NewWriter(f, inputFile, params)
	w.closer = f
	w.path = path

	return w, nil
}

// EnsureDir creates the output directory if it doesn't exist.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, "creating output directory %s", dir)
	}

	return nil
}

// Path returns the destination path, empty for writers not opened by Create.
func (w *Writer) Path() string {
	return w.path
}

// Save flushes and closes the destination. Only the first call has an effect.
func (w *Writer) Save() error {
	if w.closed {
		return w.err
	}

	w.closed = true

	w.err = w.out.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); w.err == nil {
			w.err = cerr
		}
	}

	if w.err != nil {
		w.err = errors.Wrapf(w.err, "writing %s", w.path)
	}

	return w.err
}

// Close implements io.Closer; it is equivalent to Save.
func (w *Writer) Close() error {
	return w.Save()
}

// IndentLevel returns the current indentation in spaces.
func (w *Writer) IndentLevel() int {
	return w.indentLevel
}

// Indent steps the indentation up: by 4 below level 4, by 2 from level 4 on.
// The uneven steps reproduce the layout of previously generated files.
func (w *Writer) Indent() {
	if w.indentLevel >= 4 {
		w.indentLevel += 2
	} else {
		w.indentLevel += 4
	}
}

// Unindent is the inverse of Indent along the path 0, 4, 6, 8, ...
// Levels are not clamped.
func (w *Writer) Unindent() {
	if w.indentLevel > 4 {
		w.indentLevel -= 2
	} else {
		w.indentLevel -= 4
	}
}

// Whitespace returns indentation for the current level.
func (w *Writer) Whitespace() string {
	if w.indentLevel <= 0 {
		return ""
	}

	return strings.Repeat(" ", w.indentLevel)
}

// Print writes s verbatim.
func (w *Writer) Print(s string) {
	_, _ = w.out.WriteString(s)
}

// Printf writes formatted text verbatim.
func (w *Writer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.out, format, args...)
}

// Line writes s at the current indentation followed by a line break.
func (w *Writer) Line(s string) {
	w.Print(w.Whitespace() + s + "\n")
}

// StartScope opens a brace block and indents.
func (w *Writer) StartScope() {
	w.Print(w.Whitespace() + "{\n")
	w.Indent()
}

// EndScope unindents and closes the brace block.
func (w *Writer) EndScope(finalizer ScopeFinalizer) {
	w.Unindent()
	w.Print(w.Whitespace() + "}")

	if finalizer == FinalizerSemicolon {
		w.Print(";")
	}

	w.Print("\n")
}

// Start writes the "generated file" banner.
func (w *Writer) Start() {
	w.Printf("// This file is generated by %s from %s.kcfg.\n", GeneratorName, filepath.Base(w.inputFile))
	w.Print("// All changes you do to this file will be lost.\n")
}

// AddHeaders writes one include directive per header, in order. Quoted
// names become local includes, anything else a system include.
func (w *Writer) AddHeaders(headers []string) {
	for _, include := range headers {
		if strings.HasPrefix(include, `"`) {
			w.Print("#include " + include + "\n")
		} else {
			w.Print("#include <" + include + ">\n")
		}
	}
}

// BeginNamespaces opens one namespace per "::"-separated segment of the
// configured namespace.
func (w *Writer) BeginNamespaces() {
	if w.params.NameSpace == "" {
		return
	}

	for _, ns := range strings.Split(w.params.NameSpace, "::") {
		w.Print("namespace " + ns + " {\n")
	}

	w.Print("\n")
}

// EndNamespaces closes what BeginNamespaces opened.
func (w *Writer) EndNamespaces() {
	if w.params.NameSpace == "" {
		return
	}

	w.Print("\n")

	count := strings.Count(w.params.NameSpace, "::") + 1
	for range count {
		w.Print("}\n")
	}
}
