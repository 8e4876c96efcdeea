package ast

import (
	"fmt"
	"strings"

	"github.com/mcgru/corelang/internal/ident"
)

// Print renders e as a compact debug form for the CLI driver and test
// failure messages. It is not a round-trippable pretty-printer; there is
// no concrete surface syntax defined for re-emission, only for parsing.
func Print(e Expr, env *ident.Env) string {
	var b strings.Builder
	printExpr(&b, e, env)
	return b.String()
}

func printExpr(b *strings.Builder, e Expr, env *ident.Env) {
	if e == nil {
		b.WriteString("<nil>")
		return
	}
	switch v := e.(type) {
	case *IdentExpr:
		b.WriteString(env.String(v.ID))
	case *LiteralExpr:
		printLiteral(b, v.Value)
	case *ProjectionExpr:
		printExpr(b, v.Expr, env)
		b.WriteByte('.')
		b.WriteString(env.String(v.Field))
	case *TupleExpr:
		b.WriteByte('(')
		for i, el := range v.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			printExpr(b, el, env)
		}
		b.WriteByte(')')
	case *ArrayExpr:
		b.WriteByte('[')
		for i, el := range v.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			printExpr(b, el, env)
		}
		b.WriteByte(']')
	case *RecordExpr:
		b.WriteByte('{')
		first := true
		for _, t := range v.Types {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(env.String(t.Name))
		}
		for _, f := range v.Fields {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(env.String(f.Name))
			if f.Value != nil {
				b.WriteString(" = ")
				printExpr(b, f.Value, env)
			}
		}
		if v.Base != nil {
			if !first {
				b.WriteString(", ")
			}
			b.WriteString("..")
			printExpr(b, v.Base, env)
		}
		b.WriteByte('}')
	case *AppExpr:
		printExpr(b, v.Func, env)
		for _, a := range v.ImplicitArgs {
			b.WriteString(" ?")
			printExpr(b, a, env)
		}
		for _, a := range v.Args {
			b.WriteByte(' ')
			printExpr(b, a, env)
		}
	case *LambdaExpr:
		b.WriteByte('\\')
		for i, a := range v.Args {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(env.String(a.ID))
		}
		b.WriteString(" -> ")
		printExpr(b, v.Body, env)
	case *InfixExpr:
		printExpr(b, v.Lhs, env)
		b.WriteByte(' ')
		b.WriteString(env.String(v.Op.ID))
		b.WriteByte(' ')
		printExpr(b, v.Rhs, env)
	case *IfElseExpr:
		b.WriteString("if ")
		printExpr(b, v.Cond, env)
		b.WriteString(" then ")
		printExpr(b, v.Then, env)
		b.WriteString(" else ")
		printExpr(b, v.Else, env)
	case *MatchExpr:
		b.WriteString("match ")
		printExpr(b, v.Scrutinee, env)
		b.WriteString(" with")
		for _, arm := range v.Arms {
			b.WriteString(" | ")
			printPattern(b, arm.Pattern, env)
			b.WriteString(" -> ")
			printExpr(b, arm.Body, env)
		}
	case *LetBindingsExpr:
		b.WriteString("let ")
		for i, bind := range v.Bindings {
			if i > 0 {
				b.WriteString(" and ")
			}
			printValueBinding(b, bind, env)
		}
		b.WriteString(" in ")
		printExpr(b, v.Body, env)
	case *TypeBindingsExpr:
		b.WriteString("type ")
		for i, bind := range v.Bindings {
			if i > 0 {
				b.WriteString(" and ")
			}
			b.WriteString(env.String(bind.Name.ID))
		}
		b.WriteString(" in ")
		printExpr(b, v.Body, env)
	case *DoExpr:
		b.WriteString("do ")
		b.WriteString(env.String(v.ID))
		b.WriteString(" = ")
		printExpr(b, v.Bound, env)
		b.WriteString(" in ")
		printExpr(b, v.Body, env)
	case *BlockExpr:
		for i, sub := range v.Exprs {
			if i > 0 {
				b.WriteString("; ")
			}
			printExpr(b, sub, env)
		}
	case *ErrorExpr:
		b.WriteString("<error>")
	default:
		fmt.Fprintf(b, "<%T>", v)
	}
}

func printValueBinding(b *strings.Builder, vb *ValueBinding, env *ident.Env) {
	if vb.Name != nil {
		b.WriteString(env.String(vb.Name.ID))
		for _, a := range vb.Args {
			b.WriteByte(' ')
			printPattern(b, a.Pattern, env)
		}
	} else {
		printPattern(b, vb.Pattern, env)
	}
	b.WriteString(" = ")
	printExpr(b, vb.Body, env)
}

func printPattern(b *strings.Builder, p Pattern, env *ident.Env) {
	if p == nil {
		b.WriteString("_")
		return
	}
	switch v := p.(type) {
	case *IdentPattern:
		b.WriteString(env.String(v.ID))
	case *ConstructorPattern:
		b.WriteString(env.String(v.ID))
		for _, a := range v.Args {
			b.WriteByte(' ')
			printPattern(b, a, env)
		}
	case *LiteralPattern:
		printLiteral(b, v.Value)
	case *TuplePattern:
		b.WriteByte('(')
		for i, el := range v.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			printPattern(b, el, env)
		}
		b.WriteByte(')')
	case *RecordPattern:
		b.WriteByte('{')
		first := true
		for _, f := range v.Fields {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(env.String(f.Name))
		}
		b.WriteByte('}')
	case *AsPattern:
		b.WriteString(env.String(v.Name))
		b.WriteString(" @ ")
		printPattern(b, v.Inner, env)
	case *ErrorPattern:
		b.WriteString("<error>")
	default:
		fmt.Fprintf(b, "<%T>", v)
	}
}

func printLiteral(b *strings.Builder, lit Literal) {
	switch lit.Tag {
	case LitInt:
		fmt.Fprintf(b, "%d", lit.Int)
	case LitByte:
		fmt.Fprintf(b, "%db", lit.Byte)
	case LitFloat:
		fmt.Fprintf(b, "%g", lit.Float)
	case LitString:
		fmt.Fprintf(b, "%q", lit.String)
	case LitChar:
		fmt.Fprintf(b, "%q", lit.Char)
	}
}
