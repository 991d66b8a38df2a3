package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/zeebo/errs"

	num "github.com/shabbyrobe/go-numtext"
	"github.com/shabbyrobe/go-numtext/internal/radix"
)

const usage = `Radix converter

Usage: numconv [-type int|u128|i128|u256] [-from <base>] [-to <base>] [-upper] [-dump] <value>...

-from 0 reads a 0x, 0o or 0b marker from each value and defaults to decimal.`

var Error = errs.Class("numconv")

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	numType string
	from    int
	to      int
	upper   bool
	dump    bool
}

func run(args []string, out io.Writer) error {
	var cfg config

	fs := flag.NewFlagSet("numconv", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { fmt.Fprintln(out, usage) }
	fs.StringVar(&cfg.numType, "type", "int", "Integer type: int, u128, i128, u256")
	fs.IntVar(&cfg.from, "from", 0, "Radix of the input (0 == read the literal marker)")
	fs.IntVar(&cfg.to, "to", 10, "Radix of the output")
	fs.BoolVar(&cfg.upper, "upper", false, "Use upper-case letters for digits >= 10")
	fs.BoolVar(&cfg.dump, "dump", false, "Dump the radix solution and magnitude words")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return oops.New("missing value")
	}
	if cfg.from != 0 && (cfg.from < num.MinBase || cfg.from > num.MaxBase) {
		return Error.New("-from %d out of range", cfg.from)
	}
	if cfg.to < num.MinBase || cfg.to > num.MaxBase {
		return Error.New("-to %d out of range", cfg.to)
	}

	for _, arg := range fs.Args() {
		v, err := convert(cfg, arg)
		if err != nil {
			return err
		}

		text := string(v.Append(nil, cfg.to, cfg.upper))
		fmt.Fprintln(out, text)

		if cfg.dump {
			spew.Fdump(out, radix.ForRadix(cfg.to), v.Bits())
		}
	}
	return nil
}

// convert parses arg as cfg.numType and widens it to an Int so every type
// shares the same output path. Values that overflow a fixed-width type are an
// error rather than being silently saturated.
func convert(cfg config, arg string) (num.Int, error) {
	switch strings.ToLower(cfg.numType) {
	case "int":
		return num.IntFromText(arg, cfg.from)

	case "u128":
		u, accurate, err := num.U128FromText(arg, cfg.from)
		if err != nil {
			return num.Int{}, err
		} else if !accurate {
			return num.Int{}, Error.New("%q does not fit in u128", arg)
		}
		return num.IntFromU128(u), nil

	case "i128":
		i, accurate, err := num.I128FromText(arg, cfg.from)
		if err != nil {
			return num.Int{}, err
		} else if !accurate {
			return num.Int{}, Error.New("%q does not fit in i128", arg)
		}
		return num.IntFromI128(i), nil

	case "u256":
		u, accurate, err := num.U256FromText(arg, cfg.from)
		if err != nil {
			return num.Int{}, err
		} else if !accurate {
			return num.Int{}, Error.New("%q does not fit in u256", arg)
		}
		return num.IntFromU256(u), nil

	default:
		return num.Int{}, Error.New("type must be int, u128, i128 or u256")
	}
}
