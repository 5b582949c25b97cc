// wirectl encodes and decodes protocol leaf values for inspection.
//
//	wirectl encode <fixture.toml>
//	wirectl decode --type slot [--format json|cbor] <hex>
//	wirectl nbt [--format json|cbor] <file>
//	wirectl template [--force] <path>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/danmuck/blockwire/internal/config"
	"github.com/danmuck/blockwire/internal/logging"
)

var errUsage = errors.New("usage: wirectl <encode|decode|nbt|template> [flags] <arg>")

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "wirectl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "encode":
		return runEncode(args[1:], stdout)
	case "decode":
		return runDecode(args[1:], stdout)
	case "nbt":
		return runNBT(args[1:], stdout)
	case "template":
		return runTemplate(args[1:], stdout)
	case "help", "-h", "--help":
		fmt.Fprintln(stdout, errUsage.Error())
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

// singleArg parses flags and returns the one required positional argument.
func singleArg(flagSet *pflag.FlagSet, args []string, what string) (string, error) {
	if err := flagSet.Parse(args); err != nil {
		return "", err
	}
	rest := flagSet.Args()
	if len(rest) != 1 {
		return "", fmt.Errorf("%s: expected exactly one %s argument, got %d", flagSet.Name(), what, len(rest))
	}
	return rest[0], nil
}

func runTemplate(args []string, stdout io.Writer) error {
	flagSet := pflag.NewFlagSet("template", pflag.ContinueOnError)
	force := flagSet.Bool("force", false, "overwrite an existing fixture file")
	path, err := singleArg(flagSet, args, "path")
	if err != nil {
		return err
	}
	if err := config.WriteTemplate(path, *force); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote fixture template to %s\n", path)
	return nil
}
