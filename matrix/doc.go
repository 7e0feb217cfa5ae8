// Package matrix provides the small dense linear-algebra kernels used by the
// geometric predicates of the triangulation packages.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - LU, a Doolittle factorization with partial (row) pivoting.
//   - Det, the determinant computed from the pivoted LU factors.
//   - Solve, a dense linear solve A·x = b by forward/backward substitution.
//
// The matrices handled here are tiny (at most (d+2)×(d+2) for the in-sphere
// predicate in d dimensions), so every kernel favors a fixed, deterministic
// loop order over blocking or parallelism.
//
// See the examples in this package and in geometry for usage patterns.
package matrix
