// Package printer renders a Block as the pretty-printed statement text
// used throughout this module's test fixtures: a leading brace, two-space
// indentation per nesting level, and a trailing newline. Pretty-printing
// sits outside the optimizer's own concerns, so it lives here rather than
// on the AST nodes themselves.
package printer

import (
	"strings"

	"github.com/exprbuild/optree/pkg/ast"
)

const indentUnit = "  "

// Print renders blk at the top level.
func Print(blk *ast.Block) string {
	var sb strings.Builder
	writeBlock(&sb, blk, 0)
	sb.WriteByte('\n')
	return sb.String()
}

func writeBlock(sb *strings.Builder, blk *ast.Block, depth int) {
	sb.WriteString("{\n")
	for _, s := range blk.Stmts {
		writeStmt(sb, s, depth+1)
	}
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteByte('}')
}

func writeStmt(sb *strings.Builder, s ast.Statement, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	switch v := s.(type) {
	case *ast.Block:
		sb.WriteString(indent)
		writeBlock(sb, v, depth)
		sb.WriteByte('\n')

	case *ast.ConditionalStatement:
		sb.WriteString(indent)
		for i, test := range v.Tests {
			if i == 0 {
				sb.WriteString("if (")
			} else {
				sb.WriteString(" else if (")
			}
			sb.WriteString(test.String())
			sb.WriteString(") ")
			writeBranch(sb, v.Stmts[i], depth)
		}
		if v.Else != nil {
			sb.WriteString(" else ")
			writeBranch(sb, v.Else, depth)
		}
		sb.WriteByte('\n')

	default:
		sb.WriteString(indent)
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
}

// writeBranch renders an if/else arm's body: as a nested block if it
// already is one, or wrapped in braces otherwise.
func writeBranch(sb *strings.Builder, s ast.Statement, depth int) {
	if blk, ok := s.(*ast.Block); ok {
		writeBlock(sb, blk, depth)
		return
	}
	sb.WriteString("{\n")
	sb.WriteString(strings.Repeat(indentUnit, depth+1))
	sb.WriteString(s.String())
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteByte('}')
}
