package internal

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}

// ParseFlags parses args against flags, printing usage and exiting when
// parsing fails.
func ParseFlags(flags *flag.FlagSet, args []string) {
	if err := flags.Parse(args); err != nil {
		if flags.Usage != nil {
			flags.Usage()
		}
		Fatal("Error parsing flags: %v", err)
	}
}
