package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Text substitutes every recognized placeholder in tmpl. The scan is a single
// pass, so a value that itself contains a placeholder is emitted as-is.
func Text(tmpl string, v Values) string {
	return replacer(v).Replace(tmpl)
}

func replacer(v Values) *strings.Replacer {
	subs := v.Substitutions()
	oldnew := make([]string, 0, 2*len(subs))
	for _, s := range subs {
		oldnew = append(oldnew, Placeholder(s.Name), s.Value)
	}
	return strings.NewReplacer(oldnew...)
}

// Renderer reads templates, fills them and writes the result.
type Renderer struct {
	out    io.Writer
	logger *zap.Logger
}

// New returns a Renderer that prints completion notices to out. A nil out
// discards notices and a nil logger disables logging.
func New(out io.Writer, logger *zap.Logger) *Renderer {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{out: out, logger: logger}
}

// RenderFile renders templatePath into outputPath, replacing any existing
// content, then prints a one-line notice. The output's parent directory must
// already exist.
func (r *Renderer) RenderFile(templatePath, outputPath string, v Values) error {
	text, err := r.load(templatePath, v)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return &WriteError{Path: outputPath, Err: err}
	}
	r.logger.Debug("wrote output",
		zap.String("output", outputPath),
		zap.Int("bytes", len(text)))

	fmt.Fprintf(r.out, "%s generated successfully.\n", filepath.Base(outputPath))
	return nil
}

// Render writes the rendered template to w without touching any file.
func (r *Renderer) Render(w io.Writer, templatePath string, v Values) error {
	text, err := r.load(templatePath, v)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return &WriteError{Path: "<stream>", Err: err}
	}
	return nil
}

func (r *Renderer) load(templatePath string, v Values) (string, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return "", &ReadError{Path: templatePath, Err: err}
	}
	tmpl := string(data)

	if ce := r.logger.Check(zap.DebugLevel, "substituting placeholders"); ce != nil {
		fields := []zap.Field{zap.String("template", templatePath)}
		for _, name := range Tokens {
			fields = append(fields, zap.Int(name, strings.Count(tmpl, Placeholder(name))))
		}
		ce.Write(fields...)
	}

	return Text(tmpl, v), nil
}
