package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/claude/swimdeck/internal/importer"
	"github.com/claude/swimdeck/internal/library"
	"github.com/claude/swimdeck/internal/models"
	"github.com/claude/swimdeck/internal/parse"
	"github.com/claude/swimdeck/internal/render"
	"github.com/google/uuid"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	save := flag.Bool("save", false, "save the parsed workout to the local library")
	name := flag.String("name", "", "template name (defaults to the filename)")
	tag := flag.String("tag", "", "tag for the saved template")
	list := flag.Bool("list", false, "list the local library and exit")
	show := flag.String("show", "", "print a library template by ID and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("swimdeck-parse", Version)
		return
	}

	if *list {
		lib := openLibrary()
		defer lib.Close()
		listLibrary(lib)
		return
	}
	if *show != "" {
		lib := openLibrary()
		defer lib.Close()
		showTemplate(lib, *show)
		return
	}

	// Read workout text from the file argument, or stdin when absent.
	var text []byte
	var err error
	source := "stdin"
	if flag.NArg() > 0 {
		source = flag.Arg(0)
		text, err = os.ReadFile(source)
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading workout: %v\n", err)
		os.Exit(1)
	}

	parsed := parse.Parse(string(text))

	fmt.Println(render.Text(parsed))
	printYardage(parsed)

	for _, w := range parsed.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if *save {
		tplName := *name
		if tplName == "" && flag.NArg() > 0 {
			tplName = importer.TemplateName(filepath.Base(source))
		}
		if tplName == "" {
			fmt.Fprintln(os.Stderr, "Error: -name is required when saving from stdin")
			os.Exit(1)
		}

		lib := openLibrary()
		defer lib.Close()

		tpl := models.Template{
			ID:            uuid.New(),
			UserID:        1,
			Name:          tplName,
			Title:         parsed.Title,
			PoolLength:    25,
			PoolUnits:     "yards",
			Tag:           *tag,
			SchemaVersion: models.TemplateSchemaVersion,
			CreatedAt:     time.Now().UTC(),
			Sections:      parsed.Sections,
		}
		if err := lib.Save(tpl); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving template: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %q (%s)\n", tplName, tpl.ID)
	}
}

func openLibrary() *library.Library {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
		os.Exit(1)
	}
	lib, err := library.Open(filepath.Join(homeDir, ".swimdeck"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening library: %v\n", err)
		os.Exit(1)
	}
	return lib
}

func listLibrary(lib *library.Library) {
	entries, err := lib.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing library: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("Library is empty.")
		return
	}
	for _, e := range entries {
		tag := ""
		if e.Tag != "" {
			tag = " [" + e.Tag + "]"
		}
		fmt.Printf("%s  %-30s %5d yds%s  %s\n",
			e.CreatedAt.Format("2006-01-02"), e.Name, e.TotalYards, tag, e.ID)
	}
}

func showTemplate(lib *library.Library, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid template ID %q\n", idStr)
		os.Exit(1)
	}
	tpl, err := lib.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading template: %v\n", err)
		os.Exit(1)
	}
	if tpl == nil {
		fmt.Fprintf(os.Stderr, "Template %s not found.\n", idStr)
		os.Exit(1)
	}

	result := models.ParseResult{Title: tpl.Title, Sections: tpl.Sections}
	fmt.Println(render.Text(result))
	printYardage(result)
}

func printYardage(result models.ParseResult) {
	fmt.Println("=== Yardage ===")
	for _, st := range render.SectionTotals(result) {
		fmt.Printf("  %-25s %5d\n", st.Label, st.Yards)
	}
	fmt.Printf("  %-25s %5d\n", "Total", result.TotalYards())

	strokes := render.StrokeYards(result)
	if len(strokes) > 0 {
		names := make([]string, 0, len(strokes))
		for name := range strokes {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("\n  By stroke:")
		for _, name := range names {
			fmt.Printf("    %-23s %5d\n", name, strokes[name])
		}
	}
}
