// Where: internal/domain/template/generator.go
// What: Render the Halide generator skeleton used by `halide new`.
// Why: Keep the C++ boilerplate in an embedded template instead of Go strings.
package template

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"text/template"
	"unicode"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	generatorOnce sync.Once
	generatorTmpl *template.Template
	generatorErr  error
)

var (
	ErrInvalidName       = errors.New("generator name must start with a letter")
	ErrInvalidType       = errors.New("unsupported buffer element type")
	ErrInvalidDimensions = errors.New("buffer dimensions must be between 1 and 4")
)

// ElementTypes lists the buffer element types accepted by GeneratorSpec.
var ElementTypes = []string{
	"float", "double",
	"uint8_t", "uint16_t", "uint32_t",
	"int8_t", "int16_t", "int32_t",
}

const (
	DefaultName       = "filter"
	DefaultType       = "float"
	DefaultDimensions = 3
)

// GeneratorSpec describes the skeleton written by `halide new`.
type GeneratorSpec struct {
	Name       string
	Type       string
	Dimensions int
}

// NameFromPath derives a generator name from the output file stem.
// Example: "kernels/box-blur.cpp" yields "box_blur".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if name := sanitizeName(stem); name != "" {
		return name
	}
	return DefaultName
}

// sanitizeName replaces every non-alphanumeric rune with '_' and trims the ends.
func sanitizeName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, strings.TrimSpace(name))
	return strings.Trim(mapped, "_")
}

func (s GeneratorSpec) normalized() (GeneratorSpec, error) {
	out := s
	out.Name = sanitizeName(s.Name)
	if out.Name == "" {
		out.Name = DefaultName
	}
	if !unicode.IsLetter(rune(out.Name[0])) {
		return GeneratorSpec{}, fmt.Errorf("%w: %q", ErrInvalidName, s.Name)
	}
	if out.Type == "" {
		out.Type = DefaultType
	}
	if !slices.Contains(ElementTypes, out.Type) {
		return GeneratorSpec{}, fmt.Errorf("%w: %s", ErrInvalidType, out.Type)
	}
	if out.Dimensions == 0 {
		out.Dimensions = DefaultDimensions
	}
	if out.Dimensions < 1 || out.Dimensions > 4 {
		return GeneratorSpec{}, fmt.Errorf("%w: %d", ErrInvalidDimensions, out.Dimensions)
	}
	return out, nil
}

// RenderGenerator renders the generator skeleton for spec.
func RenderGenerator(spec GeneratorSpec) (string, error) {
	normalized, err := spec.normalized()
	if err != nil {
		return "", err
	}
	tmpl, err := loadGeneratorTemplate()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, normalized); err != nil {
		return "", fmt.Errorf("render generator: %w", err)
	}
	return buf.String(), nil
}

func loadGeneratorTemplate() (*template.Template, error) {
	generatorOnce.Do(func() {
		generatorTmpl, generatorErr = template.New("generator.cpp.tmpl").
			Funcs(sprig.TxtFuncMap()).
			ParseFS(templateFS, "templates/generator.cpp.tmpl")
	})
	return generatorTmpl, generatorErr
}
