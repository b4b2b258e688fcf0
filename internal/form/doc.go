// Package form defines the structural types of a module's top-level
// declaration sequence as the rule transform sees it.
//
// The entities in this package provide a consistent vocabulary for
// representing declarations—attributes, functions, rules, diagnostics—and
// the expressions appearing inside rule clause bodies. Every variant carries
// a source position which is preserved, or explicitly re-stamped, across
// every transformation.
//
// The model is a closed tagged union: each form and expression kind is a
// concrete struct implementing an unexported marker method. There is no
// runtime reflection anywhere; code that consumes the model switches over
// the known variants.
package form
