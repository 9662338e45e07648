// Command uriwire is a thin CLI facade over the uriref/router libraries:
// it parses, normalizes, resolves, and routes URIs given on argv,
// exercising the library end to end the way a production service
// embedding it would.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vinniefalco/uri/router"
	"github.com/vinniefalco/uri/uriref"
)

var (
	base      = pflag.StringP("base", "b", "", "base URL to resolve the argument against")
	normalize = pflag.BoolP("normalize", "n", false, "normalize the URL before printing")
	routeTmpl = pflag.StringArrayP("route", "r", nil, "register a route template (may be repeated); requires -match")
	match     = pflag.StringP("match", "m", "", "request path to match against registered -route templates")
)

func main() {
	pflag.Parse()
	log.SetFlags(0)
	log.SetPrefix("uriwire: ")

	if len(*routeTmpl) > 0 {
		runRouter(*routeTmpl, *match)
		return
	}

	if pflag.NArg() != 1 {
		log.Fatal("expected exactly one URI-reference argument")
	}
	runURL(pflag.Arg(0), *base, *normalize)
}

func runURL(arg, baseText string, doNormalize bool) {
	u, err := uriref.Parse(arg)
	if err != nil {
		log.Fatalf("parse %q: %v", arg, err)
	}

	if baseText != "" {
		b, err := uriref.Parse(baseText)
		if err != nil {
			log.Fatalf("parse base %q: %v", baseText, err)
		}
		u, err = b.ResolveReference(u)
		if err != nil {
			log.Fatalf("resolve %q against %q: %v", arg, baseText, err)
		}
	}

	if doNormalize {
		u.Normalize()
	}

	fmt.Println(u.String())
}

func runRouter(templates []string, matchPath string) {
	if matchPath == "" {
		log.Fatal("-match is required with -route")
	}
	r := router.New(router.Options{})
	for _, t := range templates {
		if err := r.Insert(t, t); err != nil {
			log.Fatalf("insert route %q: %v", t, err)
		}
	}
	result, err := r.Route(matchPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "uriwire: no match for %q\n", matchPath)
		os.Exit(1)
	}

	bindings := make([]string, len(result.Bindings))
	for i, b := range result.Bindings {
		bindings[i] = b.ID + "=" + b.Value
	}
	fmt.Printf("matched %v\n", result.Resource)
	if len(bindings) > 0 {
		fmt.Printf("bindings: %s\n", strings.Join(bindings, ", "))
	}
}
