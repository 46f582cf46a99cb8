package sym

// Sym is the universal algebraic value: an Atom or an Expr. Every arithmetic
// operator accepts and returns Syms.
type Sym interface {
	// String renders the value per the display contract.
	String() string

	// ASCII renders the value using the documented ASCII glyph fallbacks.
	ASCII() string

	// Equal tests algebraic equality on simplified values. It neither
	// simplifies nor tests literal identity: an unreduced fraction is not
	// equal to its reduced form, and Undefined is not equal to Undefined.
	Equal(Sym) bool

	isSym()
}

// Expr is a compound value reducible to a canonical Atom or canonical Expr.
type Expr interface {
	Sym

	// Simplify returns the simplest representable form of the expression.
	// It is deterministic and idempotent.
	Simplify() Sym

	isExpr()
}

// AsAtom returns the value as an Atom when it is one.
func AsAtom(s Sym) (Atom, bool) {
	a, ok := s.(Atom)
	return a, ok
}

// AsExpr returns the value as an Expr when it is one.
func AsExpr(s Sym) (Expr, bool) {
	e, ok := s.(Expr)
	return e, ok
}
