// Command isocat reads one hex-encoded ISO 8583 message, parses it
// against the built-in 1987 family or a YAML family declaration, and
// prints its description. It has no encode mode. It never opens a
// socket: input is always a file or stdin.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kadeva/iso8583"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a family YAML declaration; defaults to the built-in 1987 field set")
		decode     = flag.String("decode", "", "path to a hex-encoded message to parse (use - for stdin)")
		hexBitmap  = flag.Bool("hex-bitmap", false, "parse using hex-transcribed bitmaps instead of binary")
	)
	flag.Parse()

	log := iso8583.NewDefault()

	family, err := loadFamily(*configPath)
	if err != nil {
		log.Warn("failed to load family", "error", err.Error())
		os.Exit(1)
	}

	if *decode == "" {
		fmt.Fprintln(os.Stderr, "usage: isocat -decode <path|-> [-config family.yaml] [-hex-bitmap]")
		os.Exit(2)
	}

	raw, err := readInput(*decode)
	if err != nil {
		log.Warn("failed to read input", "error", err.Error())
		os.Exit(1)
	}

	data, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		log.Warn("input is not valid hex", "error", err.Error())
		os.Exit(1)
	}

	layout := iso8583.DefaultLayout()
	if *hexBitmap {
		layout.BitmapEncoding = iso8583.BitmapHex
	}

	msg, err := family.Parse(data, layout)
	if err != nil {
		log.Warn("parse failed", "error", err.Error())
		os.Exit(1)
	}

	fmt.Println(msg.Describe())
}

func loadFamily(path string) (*iso8583.Family, error) {
	if path == "" {
		return iso8583.Default1987(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := iso8583.LoadFamilyConfig(f)
	if err != nil {
		return nil, err
	}
	return cfg.Compile()
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return os.ReadFile("/dev/stdin")
	}
	return os.ReadFile(path)
}
