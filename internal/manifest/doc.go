// Package manifest provides the YAML declaration surface for invocations.
//
// A derefgen.yaml manifest declares the same invocations as //derefgen:
// directive comments, grouped per package. Both surfaces merge before
// resolution, so a project can keep all declarations in one reviewable file,
// next to the code, or mixed.
//
//	version: "1"
//	packages:
//	  - path: ./examples/box
//	    impls:
//	      - wrapper: Box1
//	        mode: deref-and-mut
//	        target: string
//	      - wrapper: Label
//	        mode: deref
//	        target: string
//	        field: text
package manifest
