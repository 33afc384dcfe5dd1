/*
Package brandgen procedurally renders a brand's logo icon, wordmark and lockup
and exports them as SVG, PNG and multi-resolution ICO favicons.

The artwork is defined once, as proportions on a small base artboard, and every
output size is derived from it by linear scaling, so the generated assets stay
pixel-crisp at any resolution.

The package provides a command line interface for generating the complete
asset set in one pass:

	$ brandgen --out public/brand

In case you wish to integrate the API in a self constructed environment here
is a simple example:

	package main

	import (
		"fmt"
		"github.com/baremoney/brandgen"
	)

	func main() {
		gen, err := brandgen.NewGenerator(brandgen.DefaultConfig())
		if err != nil {
			fmt.Printf("Error setting up the generator: %s", err.Error())
			return
		}

		if err := gen.Process("public/brand"); err != nil {
			fmt.Printf("Error generating the brand assets: %s", err.Error())
		}
	}
*/
package brandgen
