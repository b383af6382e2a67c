package builtins

import "github.com/lunalang/luna/pkg/ident"

// Pattern-variable names shared between a built-in's registered pattern
// and its BuiltinFunc's Bindings lookups.
var (
	symLhs    = ident.Intern("lhs")
	symRhs    = ident.Intern("rhs")
	symExpr   = ident.Intern("expr")
	symH      = ident.Intern("h")
	symExprs  = ident.Intern("exprs")
	symS      = ident.Intern("s")
	symA      = ident.Intern("a")
	symB      = ident.Intern("b")
	symN      = ident.Intern("n")
	symX      = ident.Intern("x")
)
