// Package main implements the corelang CLI: a thin driver over
// internal/parser for exercising it against a file or a single REPL
// line.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mcgru/corelang/internal/ast"
	"github.com/mcgru/corelang/internal/diagnostics"
	"github.com/mcgru/corelang/internal/lexer"
	"github.com/mcgru/corelang/internal/parser"
	"github.com/mcgru/corelang/internal/pipeline"
	"github.com/mcgru/corelang/internal/source"
)

func main() {
	log.SetFlags(0)
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

func Execute() error {
	cmdRoot.AddCommand(cmdParse)
	cmdRoot.AddCommand(cmdReplLine)
	return cmdRoot.Execute()
}

var cmdRoot = &cobra.Command{
	Use:   "corelang",
	Short: "Root command for the corelang parser driver",
	Long:  `Parse corelang source files and REPL lines, printing the resulting AST and diagnostics.`,
}

var cmdParse = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a whole file as a top-level expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := uuid.New()
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		src := source.StringSource{Text: string(data)}
		ctx := pipeline.NewContext(args[0], src)
		p := parser.New(lexer.New(src.Src()), ctx)
		expr := p.TopExpr()

		fmt.Printf("[%s] %s\n", sessionID, ast.Print(expr, ctx.Env))
		for _, d := range ctx.Errors.Items() {
			fmt.Printf("[%s] %s\n", sessionID, diagnostics.Render(src.Src(), d))
		}
		return nil
	},
}

var cmdReplLine = &cobra.Command{
	Use:   "repl-line",
	Short: "read one line from stdin and parse it as a REPL line",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := uuid.New()
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		src := source.StringSource{Text: line}
		ctx := pipeline.NewContext("<repl>", src)
		p := parser.New(lexer.New(src.Src()), ctx)
		rl := p.ReplLine()

		switch rl.Tag {
		case ast.ReplExpr:
			fmt.Printf("[%s] expr: %s\n", sessionID, ast.Print(rl.Expr, ctx.Env))
		case ast.ReplLet:
			fmt.Printf("[%s] let: %s\n", sessionID, ast.Print(rl.Let.Body, ctx.Env))
		}
		for _, d := range ctx.Errors.Items() {
			fmt.Printf("[%s] %s\n", sessionID, diagnostics.Render(src.Src(), d))
		}
		return nil
	},
}
