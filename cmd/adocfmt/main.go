// Command adocfmt is a debugging/inspection harness for the asciidoctor
// parser: it reads a document (file argument or stdin), parses it, and
// prints an indented dump of the resulting Section/Block tree plus the
// collected attributes and references.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"sort"

	"github.com/google/renameio/v2"

	"github.com/sahwar/asciidoctor"
	"github.com/sahwar/asciidoctor/internal/adocutil"
)

func main() {
	var (
		out     = flag.String("o", "", "write dump atomically to this path instead of stdout")
		verbose = flag.Bool("v", false, "also dump diagnostics")
	)
	flag.Parse()

	doc, err := read(flag.Arg(0))
	if err != nil {
		log.Fatalf("parse error: %v", err)
	}

	if *out == "" {
		ew := &adocutil.ErrWriter{Writer: os.Stdout}
		dump(ew, doc, *verbose)
		if ew.Err != nil {
			log.Fatalf("write error: %v", ew.Err)
		}
		return
	}

	pf, err := renameio.NewPendingFile(*out)
	if err != nil {
		log.Fatalf("open output error: %v", err)
	}
	defer pf.Cleanup()

	ew := &adocutil.ErrWriter{Writer: pf}
	dump(ew, doc, *verbose)
	if ew.Err != nil {
		log.Fatalf("write error: %v", ew.Err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		log.Fatalf("atomic replace error: %v", err)
	}
}

func read(path string) (*asciidoctor.Document, error) {
	if path == "" || path == "-" {
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return asciidoctor.Parse(string(b))
	}
	return asciidoctor.ParseFile(path)
}

func dump(w io.Writer, doc *asciidoctor.Document, verbose bool) {
	fmt.Fprintf(w, "title: %q\n", doc.Title())

	if doc.Header != nil {
		fmt.Fprintf(w, "header: %+v\n", doc.Header)
	}

	fmt.Fprintf(w, "elements: %v\n", len(doc.Elements))
	for _, e := range doc.Elements {
		fmt.Fprintf(w, "  %+v\n", e)
	}

	if len(doc.Attributes) > 0 {
		io.WriteString(w, "attributes:\n")
		for _, k := range sortedKeys(doc.Attributes) {
			fmt.Fprintf(w, "  %s = %q\n", k, doc.Attributes[k])
		}
	}

	if len(doc.References) > 0 {
		io.WriteString(w, "references:\n")
		for _, k := range sortedKeys(doc.References) {
			fmt.Fprintf(w, "  %s -> %s\n", k, doc.References[k])
		}
	}

	if verbose && len(doc.Diagnostics) > 0 {
		io.WriteString(w, "diagnostics:\n")
		for _, d := range doc.Diagnostics {
			fmt.Fprintf(w, "  [%s] %s\n", d.Kind, d.Message)
		}
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
