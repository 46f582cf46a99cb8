// Package sym implements a closed symbolic-value arithmetic engine over the
// bounded int32 domain.
//
// Every value is a Sym: either an Atom (an exact integer or a sentinel class
// marker) or an Expr (a fraction or radical reducible to canonical form).
// Arithmetic is total: division by zero, overflow, underflow, and loss of
// distinguishing precision are not errors but first-class values (Undefined,
// Huge, NegHuge, Epsilon, NegEpsilon, Unknown) that flow through subsequent
// operations like ordinary numbers.
//
// Values are immutable; simplification returns a new Sym. All operations are
// pure, synchronous functions safe for concurrent use.
package sym
