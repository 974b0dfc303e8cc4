package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/predict/analyzer"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/report"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("LL.REPL"), where users may enter grammar
// rules and commands. LL.REPL analyses grammars and prints FIRST and FOLLOW
// sets and the predictive table for LL(1) parsing.
//
// If grammar files are given as arguments, they are analysed in batch and
// LL.REPL exits without going into interactive mode.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	dir := flag.String("dir", ".", "Directory of grammar files (*.txt)")
	htmlf := flag.String("html", "", "Write predictive table as HTML to file")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LL.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	for _, key := range []string{"predict.ll", "predict.scanner", "predict.analyzer"} {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	intp := &Intp{
		src:  analyzer.DirSource{Dir: *dir},
		html: *htmlf,
	}
	if flag.NArg() > 0 {
		if !intp.Run(flag.Args()) {
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("llrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
	intp.REPL()                                  // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Not LL(1)",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	src   analyzer.Source
	html  string   // file name for HTML export, if any
	lines []string // grammar lines typed so far
	repl  *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command, or appends a grammar line to the buffer.
// It returns true if the user wants to quit.
func (intp *Intp) Eval(line string) bool {
	if !strings.HasPrefix(line, ":") {
		intp.lines = append(intp.lines, line)
		return false
	}
	args := strings.Fields(line)
	switch cmd := args[0]; cmd {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		intp.help()
	case ":list", ":l":
		intp.list()
	case ":show", ":s":
		for _, name := range args[1:] {
			intp.show(name)
		}
	case ":run", ":r":
		intp.Run(args[1:])
	case ":clear", ":c":
		intp.lines = intp.lines[:0]
		pterm.Info.Println("grammar buffer cleared")
	case ":analyze", ":a":
		intp.analyze()
	default:
		pterm.Error.Printf("unknown command %s, try :help\n", cmd)
	}
	return false
}

func (intp *Intp) help() {
	pterm.DefaultSection.Println("Commands")
	data := pterm.TableData{
		{"command", "description"},
		{":list", "list grammar files"},
		{":show <name> …", "show grammar files"},
		{":run <name> …", "analyse grammar files (all files if no name given)"},
		{":analyze", "analyse the grammar typed so far"},
		{":clear", "clear the grammar typed so far"},
		{":help", "this help"},
		{":quit", "quit LL.REPL"},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println("Any other line is added to the grammar, e.g.  E -> TX | ε")
}

func (intp *Intp) list() {
	names, err := intp.src.Names()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if len(names) == 0 {
		pterm.Info.Println("no grammar files found")
	}
	for _, name := range names {
		pterm.Info.Println(name)
	}
}

// show prints a grammar file as a tree of non-terminals and their rules.
func (intp *Intp) show(name string) {
	text, err := intp.src.Load(name)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	g, err := ll.ParseString(name, text)
	if err != nil {
		pterm.Error.Println(err.Error())
		pterm.Println(text)
		return
	}
	list := pterm.LeveledList{{Level: 0, Text: name}}
	for _, A := range g.NonTerminals() {
		list = append(list, pterm.LeveledListItem{Level: 1, Text: A.Name})
		for _, r := range g.RulesFor(A) {
			list = append(list, pterm.LeveledListItem{Level: 2, Text: r.Body()})
		}
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(list)).Render()
}

// Run analyses grammar files. It returns false if any of them could not
// be analysed.
func (intp *Intp) Run(names []string) bool {
	outcomes, err := analyzer.Batch(context.Background(), intp.src, names)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	ok := true
	for _, out := range outcomes {
		if out.Err != nil {
			pterm.Error.Println(out.Err.Error())
			ok = false
			continue
		}
		intp.print(out.Result)
	}
	return ok
}

func (intp *Intp) analyze() {
	if len(intp.lines) == 0 {
		pterm.Info.Println("no grammar lines entered yet")
		return
	}
	result, err := analyzer.Analyze("input", strings.Join(intp.lines, "\n"))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	intp.print(result)
}

func (intp *Intp) print(result *analyzer.Result) {
	pterm.Println(result.Text())
	printTable(result)
	if w := result.Warning(); w != nil {
		pterm.Warning.Println(w.Error())
	}
	if intp.html != "" {
		if err := intp.exportHTML(result); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
}

// printTable displays the predictive table with non-terminals as rows and
// terminals as columns.
func printTable(result *analyzer.Result) {
	if result.Grammar.IsEmpty() {
		return
	}
	columns := result.Table.Columns()
	header := []string{""}
	for _, a := range columns {
		header = append(header, a.Name)
	}
	conflicts := make(map[string]*ll.Conflict)
	for _, c := range result.Conflicts {
		conflicts[c.N.Name+c.T.Name] = c
	}
	data := pterm.TableData{header}
	for _, A := range result.Grammar.NonTerminals() {
		row := []string{A.Name}
		for _, a := range columns {
			cell := ""
			if c, ok := conflicts[A.Name+a.Name]; ok {
				bodies := make([]string, len(c.Rules))
				for i, r := range c.Rules {
					bodies[i] = r.Body()
				}
				cell = strings.Join(bodies, " / ")
			} else if r, ok := result.Table.Lookup(A, a.Value); ok {
				cell = r.Body()
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) exportHTML(result *analyzer.Result) error {
	f, err := os.Create(intp.html)
	if err != nil {
		return err
	}
	if err = report.HTML(f, result.Generator); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	tracer().Infof("predictive table for %s written to %s", result.Grammar.Name, intp.html)
	return nil
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
