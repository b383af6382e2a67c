package builtins

import (
	"github.com/lunalang/luna/internal/term"
)

// Small constructors for the pattern sub-language (spec.md section 4.3),
// mirroring internal/pattern's unexported test helpers — duplicated here
// rather than exported from internal/pattern, since built-in registration
// is the only other place that needs to write pattern terms by hand.

func blank() term.Term {
	return term.NewCompound(term.Sym("Blank"))
}

func namedBlank(name string) term.Term {
	return term.NewCompound(term.Sym("Pattern"), term.Sym(name), blank())
}

func namedBlankSequence(name string) term.Term {
	return term.NewCompound(term.Sym("Pattern"), term.Sym(name), term.NewCompound(term.Sym("BlankSequence")))
}

func namedBlankNullSequence(name string) term.Term {
	return term.NewCompound(term.Sym("Pattern"), term.Sym(name), term.NewCompound(term.Sym("BlankNullSequence")))
}

// pat builds head[args...] for registering a built-in's pattern.
func pat(head string, args ...term.Term) term.Term {
	return term.NewCompound(term.Sym(head), args...)
}
