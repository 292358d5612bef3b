// Command seqview prints concatenations, cartesian products, coordinate boxes
// and type-filtered token streams computed through seqview views.
//
// Usage:
//
//	seqview product --axis a,b --axis c,d,e
//	seqview product --axis x,y1+y2 --axis 1,2 --flat
//	seqview product --config seqview.yaml --workers 4 --from 100 --limit 10
//	seqview concat --list a,b --list c
//	seqview coords --extent 3 --extent 2
//	seqview filter --type int 1 a 2 b 3
//	seqview version
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(newApp(os.Stdout)).Execute(); err != nil {
		os.Exit(1)
	}
}
