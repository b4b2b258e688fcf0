// Package formsio encodes and decodes form sequences as YAML documents.
//
// This is the wire format between the external parser producing forms, the
// transform, and the downstream compiler consuming the rewritten sequence.
// A document is a YAML list; every form and expression mapping carries a
// form:/expr: discriminator naming its variant. A bare scalar in expression
// position is shorthand for an opaque term.
//
//	- form: module
//	  name: routes
//	  pos: {file: routes.rl, line: 1}
//	- form: rule
//	  name: path
//	  clauses:
//	    - patterns: [X, Y]
//	      body:
//	        - expr: generator
//	          pattern: Z
//	          source: edges(X)
//
// Encode and Decode are inverse up to YAML layout.
package formsio
