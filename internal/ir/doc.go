// Package ir provides the shared data model for the embedder.
//
// This package contains type definitions only. All other internal packages
// import ir; ir imports nothing internal. This keeps the model the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Dependency is an immutable value; identity is Key()
//   - Directive preserves clause order and attribute order exactly as written
//   - Empty strings mean "absent" for every optional dependency attribute
//   - All JSON and YAML tags use snake_case
package ir
