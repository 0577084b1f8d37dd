/*
Package scanicon renders the barcode scanner app icon procedurally, at any edge length,
from a set of proportions. Every layer (gradient background, barcode bars, viewfinder
brackets, scan line, parcel and checkmark glyphs) is expressed as fractions of the canvas
or of its enclosing glyph, so the icon stays geometrically similar at every size.

The package provides a command line interface which writes the store icon set.
To check the supported commands type:

	$ scanicon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/scanicon/scanicon"
	)

	func main() {
		b := &scanicon.Batch{
			Renderer: scanicon.NewRenderer(),
			OutDir:   "store-assets",
			Sizes:    scanicon.DefaultSizes,
		}

		s := b.Execute()
		for _, r := range s.Failed {
			fmt.Printf("Error rendering %dx%d: %v\n", r.Size, r.Size, r.Err)
		}
	}
*/
package scanicon
