package graftactil_test

import (
	"fmt"
	"io"
	"log"

	"github.com/graftactil/graftactil"
)

func ExampleOpen() {
	warnings, err := graftactil.Open("testdata/params.json").FoldDiacritics().SVG(io.Discard)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(graftactil.FormatWarnings(warnings))
	// Output: undefined samples: root: 1 samples skipped
}
