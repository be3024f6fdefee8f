// Package libdiff computes differences between values of package value.
//
// Diff reports structural changes keyed by path:
//
//	for _, c := range libdiff.Diff(old, new) {
//	    fmt.Println(c)
//	}
//
// prints lines such as
//
//	~ deploy.replicas: 2 -> 3
//	+ deploy.labels.tier: "web"
//	- status: {"ready":true}
//
// Lines gives a textual diff of the indented JSON encodings instead.
package libdiff
