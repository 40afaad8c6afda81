package cmd

import "github.com/exprbuild/optree/pkg/ast"

// exprScenarios registers the canned expressions the optimize command can
// run OptimizeVisitor over, named after the concrete examples this
// module's rewrites are built against.
var exprScenarios = map[string]func() ast.Expression{
	"constant-eq": func() ast.Expression {
		return ast.Equal2(ast.NewConstant(1, ast.Int), ast.NewConstant(1, ast.Int))
	},
	"true-ternary": func() ast.Expression {
		return ast.Conditional(ast.NewConstant(true, ast.Bool), ast.NewConstant(1, ast.Int), ast.NewConstant(2, ast.Int))
	},
	"not-ternary": func() ast.Expression {
		b := ast.NewParameter("bool", ast.Bool)
		return ast.Conditional(ast.Not(b), ast.NewConstant(1, ast.Int), ast.NewConstant(2, ast.Int))
	},
	"false-and": func() ast.Expression {
		b := ast.NewParameter("bool", ast.Bool)
		return ast.AndAlso(ast.NewConstant(false, ast.Bool), b)
	},
	"null-and": func() ast.Expression {
		b := ast.NewParameter("bool", ast.Bool)
		return ast.AndAlso(ast.NewConstant(nil, ast.BoxedBool), b)
	},
	"primitive-null-eq": func() ast.Expression {
		x := ast.NewParameter("x", ast.Int)
		return ast.Equal2(x, ast.NewConstant(nil, ast.Int))
	},
	"boxed-null-eq": func() ast.Expression {
		x := ast.NewParameter("x", ast.BoxedInt)
		return ast.Equal2(x, ast.NewConstant(nil, ast.BoxedInt))
	},
}

// blockScenarios registers the canned statement lists the build command
// runs through a fresh optimizing BlockBuilder.
var blockScenarios = map[string]func() []ast.Statement{
	"inline-single-use": func() []ast.Statement {
		x := ast.NewParameter("x", ast.Int)
		t := ast.NewParameter("t", ast.Int)
		init := ast.NewBinary(ast.KindAdd, x, ast.NewConstant(1, ast.Int), ast.Int)
		decl := ast.Declare(ast.ModFinal, t, init)
		ret := ast.Return(ast.NewBinary(ast.KindAdd, t, ast.NewConstant(1, ast.Int), ast.Int))
		return []ast.Statement{decl, ret}
	},
	"keep-underscore": func() []ast.Statement {
		x := ast.NewParameter("x", ast.Int)
		t := ast.NewParameter("_t", ast.Int)
		init := ast.NewBinary(ast.KindAdd, x, ast.NewConstant(1, ast.Int), ast.Int)
		decl := ast.Declare(ast.ModFinal, t, init)
		ret := ast.Return(ast.NewBinary(ast.KindAdd, t, ast.NewConstant(1, ast.Int), ast.Int))
		return []ast.Statement{decl, ret}
	},
	"dead-branch": func() []ast.Statement {
		b := ast.NewParameter("bool", ast.Bool)
		cs := ast.NewConditionalStatement(
			[]ast.Expression{b, ast.NewConstant(false, ast.Bool), ast.NewConstant(true, ast.Bool)},
			[]ast.Statement{
				ast.NewBlock([]ast.Statement{ast.Return(ast.NewConstant(1, ast.Int))}),
				ast.NewBlock([]ast.Statement{ast.Return(ast.NewConstant(2, ast.Int))}),
				ast.NewBlock([]ast.Statement{ast.Return(ast.NewConstant(4, ast.Int))}),
			},
			ast.NewBlock([]ast.Statement{ast.Return(ast.NewConstant(5, ast.Int))}),
		)
		return []ast.Statement{cs}
	},
}

func exprScenarioNames() []string {
	names := make([]string, 0, len(exprScenarios))
	for n := range exprScenarios {
		names = append(names, n)
	}
	return names
}

func blockScenarioNames() []string {
	names := make([]string, 0, len(blockScenarios))
	for n := range blockScenarios {
		names = append(names, n)
	}
	return names
}
