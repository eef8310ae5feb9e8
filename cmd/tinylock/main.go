package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/saylorsolutions/tinylock/pkg/tinylock"
	flag "github.com/spf13/pflag"
)

var version = "dev"

const encryptedExt = ".tlk"

func main() {
	var (
		helpFlag    bool
		decryptFlag bool
		forceFlag   bool
		outPath     string
	)
	flags := flag.NewFlagSet("tinylock", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&decryptFlag, "decrypt", "d", false, "Decrypt FILE instead of encrypting it.")
	flags.BoolVarP(&forceFlag, "force", "f", false, "Overwrite the output file if it already exists.")
	flags.StringVarP(&outPath, "output", "o", "", "Write output to this path instead of the default.")
	flags.Usage = func() {
		fmt.Printf(`
tinylock (%s) encrypts a file with a password, producing a single self-contained file that can be decrypted anywhere with the same password.
Encryption uses AES-256-GCM with a key derived from the password via argon2id, so both tampering and an incorrect password are reliably detected.

By default, encrypting FILE writes FILE%s, and decrypting FILE strips that extension. Use -o to pick a different output path.
The password is read from the terminal without echo, or from the %s environment variable if it is set. Prefer the prompt: environment variables are visible to other processes on some systems.

USAGE:  tinylock [-d] [-o OUTPUT] FILE

ARGS:
    FILE is the file to encrypt or decrypt.

FLAGS:
%s
NOTE:
    There is no way to recover the contents of an encrypted file without the password. Nothing is stored anywhere else.
`, version, encryptedExt, passwordEnvVar, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if flags.NArg() != 1 {
		fatal("Expected exactly one FILE argument, got %d", flags.NArg())
	}

	inPath := flags.Arg(0)
	if outPath == "" {
		outPath = defaultOutPath(inPath, decryptFlag)
		if outPath == "" {
			fatal("%s doesn't end in %s, specify an output path with -o", inPath, encryptedExt)
		}
	}
	if !forceFlag {
		if _, err := os.Stat(outPath); err == nil {
			fatal("Output file %s already exists, use -f to overwrite it", outPath)
		}
	}

	if err := run(inPath, outPath, decryptFlag); err != nil {
		fatal("%v", err)
	}
}

func run(inPath, outPath string, decrypt bool) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}
	defer tinylock.Zero(data)

	// Encryption prompts twice. A typo in an unconfirmed password would
	// produce a file nobody can ever decrypt.
	password, err := getPassword(!decrypt)
	if err != nil {
		return err
	}
	defer tinylock.Zero(password)

	var result []byte
	if decrypt {
		result, err = tinylock.Decrypt(data, password)
		switch {
		case errors.Is(err, tinylock.ErrIncorrectPassword):
			return fmt.Errorf("incorrect password for %s", inPath)
		case errors.Is(err, tinylock.ErrMalformedData):
			return fmt.Errorf("%s is not a tinylock encrypted file, or it has been truncated", inPath)
		case err != nil:
			return err
		}
	} else {
		result, err = tinylock.Encrypt(data, password)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(outPath, result, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	echo("Wrote %s", outPath)
	return nil
}

func defaultOutPath(inPath string, decrypt bool) string {
	if !decrypt {
		return inPath + encryptedExt
	}
	trimmed := strings.TrimSuffix(inPath, encryptedExt)
	if trimmed == inPath || trimmed == "" {
		return ""
	}
	return trimmed
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
