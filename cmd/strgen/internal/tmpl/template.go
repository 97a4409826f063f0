package tmpl

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"time"
	"unicode"
	"unicode/utf16"

	"github.com/saylorsolutions/xorstr/pkg/xorstr"
)

var (
	//go:embed hidden_embed.go.tmpl
	tmplText     string
	tmplTemplate = template.Must(template.New("template").Parse(tmplText))
)

// Entry is one literal rendered into the generated file: a baked word array
// and the accessor that reveals it. Formatting happens up front so the
// template only substitutes strings.
type Entry struct {
	WordsName    string
	FuncName     string
	TypeParam    string
	ReturnType   string
	Copy         string
	SeedLiteral  string
	Length       int
	WordCount    int
	WordsLiteral string
}

type Params struct {
	Package string
	Source  string
	Exposed bool
	Entries []*Entry

	srcData        []byte
	stampA, stampB byte
	stampSet       bool
	deterministic  bool
	outputDir      string
	targetFileName string
}

// ParamOpt operates on Params in a standard and predictable way, and is used in GenerateFile.
// If any ParamOpt returns an error, then file generation ceases and the error is returned.
type ParamOpt = func(params *Params) error

// ExposeFunctions indicates that generated accessors should be exposed.
func ExposeFunctions(val ...bool) ParamOpt {
	return func(params *Params) error {
		if len(val) > 0 {
			params.Exposed = val[0]
			return nil
		}
		params.Exposed = true
		return nil
	}
}

// PackageName specifies the package name of the generated file.
// This is useful for cases where the expected package name doesn't match the name of the containing directory.
func PackageName(name string) ParamOpt {
	name = strings.TrimSpace(name)
	return func(params *Params) error {
		if len(name) == 0 {
			return nil
		}
		params.Package = name
		return nil
	}
}

// OutputDir specifies the directory the generated file is written to instead
// of the current working directory.
func OutputDir(dir string) ParamOpt {
	dir = strings.TrimSpace(dir)
	return func(params *Params) error {
		if len(dir) == 0 {
			return nil
		}
		params.outputDir = dir
		return nil
	}
}

// Stamp pins the two clock bytes mixed into every site seed, making a pass
// reproducible. The value must render as HH:MM:SS. An empty value leaves the
// stamp source unchanged.
func Stamp(stamp string) ParamOpt {
	stamp = strings.TrimSpace(stamp)
	return func(params *Params) error {
		if len(stamp) == 0 {
			return nil
		}
		a, b, err := parseStamp(stamp)
		if err != nil {
			return err
		}
		params.stampA, params.stampB = a, b
		params.stampSet = true
		return nil
	}
}

// Deterministic derives the stamp bytes from the input contents instead of
// the wall clock, so repeated passes over an unchanged input produce the same
// file. A pinned Stamp takes precedence.
func Deterministic(val ...bool) ParamOpt {
	return func(params *Params) error {
		if len(val) > 0 {
			params.deterministic = val[0]
			return nil
		}
		params.deterministic = true
		return nil
	}
}

// GenerateFile will generate a file embedding every string literal declared
// in the input as encrypted words with reveal accessors. Various generation
// options may be passed as zero or more ParamOpt.
func GenerateFile(input string, opts ...ParamOpt) error {
	params := new(Params)
	if err := populateContextData(params); err != nil {
		return err
	}
	if err := populateSourceData(params, input); err != nil {
		return err
	}

	for _, opt := range opts {
		if err := opt(params); err != nil {
			return err
		}
	}

	if !params.stampSet {
		if params.deterministic {
			params.stampA, params.stampB = contentStamp(params.srcData)
		} else {
			params.stampA, params.stampB = clockStamp(time.Now())
		}
	}

	lits, err := ScanLiterals(input, params.srcData)
	if err != nil {
		return err
	}
	if err := buildEntries(params, lits); err != nil {
		return err
	}

	out, err := os.Create(filepath.Join(params.outputDir, params.targetFileName))
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if err := tmplTemplate.Execute(out, params); err != nil {
		return err
	}
	return nil
}

func populateContextData(params *Params) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	params.Package = filepath.Base(cwd)
	return nil
}

var (
	nameCleansePattern = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

func populateSourceData(params *Params, input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	params.srcData = data
	_, fname := filepath.Split(input)
	params.Source = fname
	stem := nameCleansePattern.ReplaceAllString(strings.TrimSuffix(fname, ".go"), "_")
	params.targetFileName = stem + "_hidden.go"
	return nil
}

func buildEntries(params *Params, lits []Literal) error {
	seen := make(map[string]string, len(lits))
	for i, lit := range lits {
		cleansed := nameCleansePattern.ReplaceAllString(lit.Name, "_")
		capped := unicap(cleansed)
		if prev, ok := seen[capped]; ok {
			return fmt.Errorf("literals %s and %s generate the same accessor name", prev, lit.Name)
		}
		seen[capped] = lit.Name

		seed := SiteSeed(uint64(i), uint64(lit.Line), params.stampA, params.stampB)
		entry := &Entry{
			WordsName:   uncap(cleansed) + "Words",
			FuncName:    "reveal" + capped,
			SeedLiteral: fmt.Sprintf("%#x", seed),
		}
		if params.Exposed {
			entry.FuncName = "Reveal" + capped
		}

		var words []uint64
		switch lit.Kind {
		case KindRaw:
			words = xorstr.Encode(seed, []byte(lit.Value))
			entry.TypeParam = "byte"
			entry.ReturnType = "[]byte"
			entry.Copy = "append([]byte(nil), s.Reveal()...)"
			entry.Length = len(lit.Value)
		case KindWide:
			units := utf16.Encode([]rune(lit.Value))
			words = xorstr.Encode(seed, units)
			entry.TypeParam = "uint16"
			entry.ReturnType = "[]uint16"
			entry.Copy = "append([]uint16(nil), s.Reveal()...)"
			entry.Length = len(units)
		default:
			words = xorstr.Encode(seed, []byte(lit.Value))
			entry.TypeParam = "byte"
			entry.ReturnType = "string"
			entry.Copy = "string(s.Reveal())"
			entry.Length = len(lit.Value)
		}
		entry.WordCount = len(words)
		entry.WordsLiteral = formatWords(words)
		params.Entries = append(params.Entries, entry)
	}
	return nil
}

// formatWords renders the composite literal body, one chunk of four words
// per line.
func formatWords(words []uint64) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, w := range words {
		if i%4 == 0 {
			sb.WriteString("\n\t")
		} else {
			sb.WriteString(" ")
		}
		_, _ = fmt.Fprintf(&sb, "%#018x,", w)
	}
	sb.WriteString("\n}")
	return sb.String()
}

func unicap(s string) string {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return string(unicode.ToUpper(runes[0]))
	default:
		return string(append([]rune{unicode.ToUpper(runes[0])}, runes[1:]...))
	}
}

func uncap(s string) string {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return string(unicode.ToLower(runes[0]))
	default:
		return string(append([]rune{unicode.ToLower(runes[0])}, runes[1:]...))
	}
}
