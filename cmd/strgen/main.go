package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/xorstr/cmd/internal"
	"github.com/saylorsolutions/xorstr/cmd/strgen/internal/tmpl"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "verify" {
		runVerify(args[1:])
		return
	}
	runGenerate(args)
}

func runGenerate(args []string) {
	var (
		helpFlag      bool
		versionFlag   bool
		exposedFlag   bool
		deterministic bool
		packageName   string
		outputDir     string
		stamp         string
	)
	flags := flag.NewFlagSet("strgen", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the strgen version.")
	flags.BoolVarP(&exposedFlag, "exposed", "E", false, "Make the reveal accessors exposed from the file. It's recommended to only expose from within an internal package.")
	flags.BoolVarP(&deterministic, "deterministic", "d", false, "Derive the seed stamp from the input contents instead of the clock, for reproducible output.")
	flags.StringVarP(&packageName, "package", "p", "", "Overrides the package name of the generated file.")
	flags.StringVarP(&outputDir, "output", "o", "", "Directory the generated file is written to, defaulting to the current directory.")
	flags.StringVar(&stamp, "stamp", "", "Pins the seed stamp to a fixed HH:MM:SS clock value, for reproducible output.")
	flags.Usage = func() {
		fmt.Printf(`
strgen generates code embedding XOR obfuscated string literals by generating a *_hidden.go file from the string declarations in the input file. This pairs well with go:generate comments.
Each top-level string var or const in the input becomes a word array and a reveal accessor in the generated file. A trailing //strgen:raw comment makes the accessor return []byte, and //strgen:wide packs the value as UTF-16 and returns []uint16.
For example, given an input declaring greeting = "...", the generated file contains a function called revealGreeting returning the decoded string. The input file itself should carry a //go:build ignore constraint so it stays out of the build.
See the -E flag below to make accessors exposed, and make sure you review the SECURITY notes below if you're unfamiliar with XOR screening.

USAGE:  strgen FILE
        strgen verify FILE ARTIFACT...

ARGS:
    FILE is the input Go source declaring the string literals to embed.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
XOR screening hides embedded strings from passive binary analysis only, since the seed each key sequence derives from is baked right next to the encrypted words.
Every reveal accessor decodes a fresh copy and shreds its working store, but the returned value is ordinary memory; anyone with a debugger attached at the right moment can still read it.
Use "strgen verify" after building to confirm no plaintext slipped into the final artifacts.
`, flags.FlagUsages())
	}
	if len(args) == 0 {
		flags.Usage()
		return
	}
	internal.ParseFlags(flags, args)
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		internal.Echo("strgen version %s", version)
		return
	}

	switch flags.NArg() {
	case 0:
		internal.Fatal("Missing required FILE argument")
	case 1:
		err := tmpl.GenerateFile(
			flags.Arg(0),
			tmpl.ExposeFunctions(exposedFlag),
			tmpl.Deterministic(deterministic),
			tmpl.PackageName(packageName),
			tmpl.OutputDir(outputDir),
			tmpl.Stamp(stamp),
		)
		if err != nil {
			internal.Fatal("Failed to generate file: %v", err)
		}
	default:
		internal.Fatal("Unexpected extra arguments: %v", flags.Args()[1:])
	}
}

func runVerify(args []string) {
	var helpFlag bool
	flags := flag.NewFlagSet("strgen verify", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.Usage = func() {
		fmt.Printf(`
strgen verify scans built artifacts for the plaintext of the literals declared in the input file, confirming that only encrypted words made it into the build.
Literals shorter than 4 bytes are skipped, and wide literals are checked in both their UTF-8 and UTF-16LE renderings.

USAGE:  strgen verify FILE ARTIFACT...

ARGS:
    FILE is the input Go source declaring the string literals.
    ARTIFACT is one or more built files to scan, such as binaries or object files.

FLAGS:
%s`, flags.FlagUsages())
	}
	internal.ParseFlags(flags, args)
	if helpFlag {
		flags.Usage()
		return
	}
	if flags.NArg() < 2 {
		flags.Usage()
		internal.Fatal("verify needs an input file and at least one artifact")
	}
	leaks, err := tmpl.VerifyArtifacts(flags.Arg(0), flags.Args()[1:]...)
	if err != nil {
		internal.Fatal("Failed to verify artifacts: %v", err)
	}
	if len(leaks) > 0 {
		for _, leak := range leaks {
			internal.Echo("%s", leak)
		}
		internal.Fatal("Found %d plaintext leak(s)", len(leaks))
	}
	internal.Echo("No plaintext leaks found in %d artifact(s)", flags.NArg()-1)
}
