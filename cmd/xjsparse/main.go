// Command xjsparse parses xjsfront source files and prints their tokens or
// AST.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xjslang/xjsfront"
	"github.com/xjslang/xjsfront/debug"
	"github.com/xjslang/xjsfront/lexer"
	"github.com/xjslang/xjsfront/token"
)

var (
	sourceType string
	ranges     bool
	tolerant   bool
)

func main() {
	root := &cobra.Command{
		Use:     "xjsparse",
		Short:   "Parse xjsfront source files",
		Version: xjsfront.Version,
	}
	root.PersistentFlags().StringVar(&sourceType, "source-type", "script", `"script" or "module"`)
	root.PersistentFlags().BoolVar(&ranges, "ranges", false, "populate line/column Loc on every node")
	root.PersistentFlags().BoolVar(&tolerant, "tolerant", false, "keep parsing past recoverable syntax errors")

	root.AddCommand(parseCmd(), tokenizeCmd(), astCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}

func options(filename string) xjsfront.Options {
	return xjsfront.Options{
		SourceType:     sourceType,
		SourceFilename: filename,
		Ranges:         ranges,
		TolerantMode:   tolerant,
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a file and report success or syntax errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(args)
			if err != nil {
				return err
			}
			filename := ""
			if len(args) > 0 {
				filename = args[0]
			}
			_, errs := xjsfront.Parse(src, options(filename))
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e.Error())
			}
			if len(errs) > 0 && !tolerant {
				os.Exit(1)
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func tokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Print the token stream for a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(args)
			if err != nil {
				return err
			}
			l := lexer.New(src, lexer.Options{})
			for {
				tok := l.NextToken()
				fmt.Printf("%-16s %q\n", tok.Type.String(), tok.Literal)
				if tok.Type == token.EOF {
					break
				}
			}
			return nil
		},
	}
}

func astCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the parsed AST",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(args)
			if err != nil {
				return err
			}
			filename := ""
			if len(args) > 0 {
				filename = args[0]
			}
			program, errs := xjsfront.Parse(src, options(filename))
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e.Error())
			}
			if program != nil {
				fmt.Print(debug.Dump(program))
			}
			if len(errs) > 0 && !tolerant {
				os.Exit(1)
			}
			return nil
		},
	}
}
