package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/saylorsolutions/stegx/cmd/stegx/internal/console"
	"github.com/saylorsolutions/stegx/pkg/imgio"
	"github.com/saylorsolutions/stegx/pkg/seal"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		versionFlag bool
		verboseFlag bool
		sealFlag    bool
		formatFlag  string
	)
	flags := flag.NewFlagSet("stegx", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the version and exits.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log diagnostic details to stderr.")
	flags.BoolVarP(&sealFlag, "seal", "s", false, "Seal messages with a password derived AES key before hiding them, and expect sealed messages when showing.")
	flags.StringVarP(&formatFlag, "format", "f", imgio.FormatPNG, fmt.Sprintf("Output image format, one of %s.", strings.Join(imgio.Formats, ", ")))
	flags.Usage = func() {
		fmt.Printf(`
stegx hides a text message in the least significant bits of an image's pixels, and shows it again.
Tasks are read one line at a time from stdin, and each task prompts for the values it needs.

USAGE:  stegx [FLAGS]

TASKS:
    hide    Prompts for an input image, output image, message, and password, and writes the message into the output image.
    show    Prompts for an image and password, and prints the hidden message.
    exit    Ends the session.

FLAGS:
%s
SECURITY:
    Without --seal, the password is applied as a repeating XOR key. This is obfuscation, not encryption!
Only lossless output formats are supported, and any lossy re-encoding of the output image will destroy the message.
`, flags.FlagUsages())
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		echo("stegx %s", version)
		return
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	}

	opts := []console.Opt{
		console.WithFormat(formatFlag),
		console.WithLogger(log),
	}
	if sealFlag {
		params, err := seal.NewParams()
		if err != nil {
			fatal("Failed to configure sealing: %v", err)
		}
		opts = append(opts, console.WithSeal(params))
	}
	session, err := console.New(os.Stdin, os.Stdout, opts...)
	if err != nil {
		fatal("Failed to start: %v", err)
	}
	log.WithFields(logrus.Fields{
		"format": formatFlag,
		"sealed": sealFlag,
	}).Debug("Starting session")
	session.Run()
}

func fatal(msg string, args ...any) {
	echo(msg, args...)
	os.Exit(1)
}

func echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}
