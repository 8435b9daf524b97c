// Command cpuiddump prints raw CPUID register values for the current
// processor. With no flags it walks the basic and extended leaf ranges with
// subleaf 0; -leaf queries a single leaf, optionally with -subleaf.
//
// The output is deliberately uninterpreted: four hex registers per leaf,
// nothing decoded.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/cwbudde/cpuid"
)

func main() {
	var (
		leafArg    = flag.String("leaf", "", "query a single leaf (decimal or 0x-prefixed hex)")
		subleafArg = flag.Uint("subleaf", 0, "subleaf to use with -leaf")
	)
	flag.Parse()

	if !cpuid.Supported() {
		fmt.Fprintln(os.Stderr, "cpuiddump: CPUID is not available in this build")
		os.Exit(1)
	}

	fmt.Printf("%10s %7s %8s %8s %8s %8s\n", "leaf", "subleaf", "eax", "ebx", "ecx", "edx")

	if *leafArg != "" {
		leaf, err := strconv.ParseUint(*leafArg, 0, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cpuiddump: bad leaf %q: %v\n", *leafArg, err)
			os.Exit(2)
		}

		printLeaf(uint32(leaf), uint32(*subleafArg))
		return
	}

	for leaf := uint32(0); leaf <= cpuid.MaxBasic(); leaf++ {
		printLeaf(leaf, 0)
	}

	if max := cpuid.MaxExtended(); max != 0 {
		for leaf := uint32(0x80000000); leaf <= max; leaf++ {
			printLeaf(leaf, 0)
		}
	}
}

func printLeaf(leaf, subleaf uint32) {
	r := cpuid.Query(leaf, subleaf)
	fmt.Printf("%#10x %7d %08x %08x %08x %08x\n", leaf, subleaf, r.EAX, r.EBX, r.ECX, r.EDX)
}
