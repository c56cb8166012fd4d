// Package samples registers example models.
// Import it for its side effect:
//
//	import _ "github.com/reusee/modelrun/samples"
package samples
