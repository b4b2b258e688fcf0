// Package ruleform implements the single-pass rewrite of a module's
// declaration sequence.
//
// The pipeline detects rule declarations among ordinary forms, converts
// every rule into an ordinary function, validates and rewrites generator
// expressions inside rule bodies, and splices in synthetic declarations:
// position markers, an export list, and a generated introspection function
// enumerating all discovered rules by name and arity.
//
// Core components:
//
//   - Module analyzer
//     Locates the at-most-one module declaration, classifies it as plain
//     or parameterized, and splits the sequence into a verified prefix
//     and a remainder.
//
//   - Attribute-run splitter
//     Separates the contiguous run of header attributes following the
//     module declaration from the body forms.
//
//   - Rule collector
//     Scans the original full sequence for rule identities and produces
//     their canonical sorted, deduplicated order.
//
//   - Rule transformer
//     Rewrites generator expressions into explicit bindings and converts
//     rules into functions.
//
//   - Form assembler
//     Deterministically concatenates the final output sequence, restating
//     the current position marker after each splice of synthetic forms.
//
// The transform is pure and synchronous: one input sequence in, one output
// sequence out, no I/O and no shared state. Violations it diagnoses become
// error marker forms embedded in the output; the call itself never fails
// on them, so a single invocation surfaces every problem at once.
package ruleform
