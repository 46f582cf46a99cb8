// Package algebra exposes the symbolic arithmetic engine as a service
// provider.
//
// This package is organized into specialized modules:
//   - operations: closed arithmetic (add, subtract, multiply, divide, power, sqrt)
//   - reduce: canonicalization of fractions and radicals
//   - factoring: factor enumeration, gcf, lcm, primality, parity
//
// All results stay exact over the bounded integer domain. Values the domain
// cannot represent come back as sentinel atoms (huge, epsilon, undefined,
// complex, unknown) instead of errors; a tool call only fails on malformed
// parameters.
package algebra
