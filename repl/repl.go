/*
File    : weave/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements Weave's Read-Eval-Print Loop. It wraps a back end
(tree-walking evaluator or compiler+VM) behind readline-driven line
editing, carrying interpreter state across lines the way the teacher's
repl.Repl carries its eval.Evaluator across Readline() calls.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/akashmaji946/weave/compiler"
	"github.com/akashmaji946/weave/evaluator"
	"github.com/akashmaji946/weave/object"
	"github.com/akashmaji946/weave/parser"
	"github.com/akashmaji946/weave/style"
	"github.com/akashmaji946/weave/vm"
)

// Repl holds the static display text and the per-session backend toggle.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	useVM bool
}

// NewRepl creates a Repl configured for the tree-walking evaluator by
// default; toggled to the VM back end via the `/vm` command.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	io.WriteString(writer, style.Cyan(r.Line)+"\n")
	io.WriteString(writer, style.Bold(r.Banner)+"\n")
	io.WriteString(writer, style.Cyan(r.Line)+"\n")
	io.WriteString(writer, style.Yellow("Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)+"\n")
	io.WriteString(writer, style.Cyan(r.Line)+"\n")
	io.WriteString(writer, style.Cyan("Welcome to Weave!")+"\n")
	io.WriteString(writer, style.Cyan("Type an expression and press enter.")+"\n")
	io.WriteString(writer, style.Cyan("Type '/vm' to toggle the bytecode VM back end, '/exit' to quit.")+"\n")
	io.WriteString(writer, style.Cyan(r.Line)+"\n")
}

// session holds per-connection interpreter state so both back ends carry
// bindings from one line to the next.
type session struct {
	eval *evaluator.Evaluator

	symbols   *compiler.SymbolTable
	constants []object.Value
	globals   []object.Value
}

func newSession(writer io.Writer) *session {
	ev := evaluator.New()
	ev.SetWriter(writer)
	return &session{
		eval:    ev,
		symbols: compiler.NewSymbolTable(),
		globals: make([]object.Value, vm.GlobalsSize),
	}
}

// Start runs the REPL loop against reader/writer until the user exits,
// EOF arrives, or readline itself fails to initialize.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		io.WriteString(writer, style.Red(err.Error())+"\n")
		return
	}
	defer rl.Close()

	sess := newSession(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(writer, "Good Bye!\n")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/exit" {
			io.WriteString(writer, "Good Bye!\n")
			return
		}
		if line == "/vm" {
			r.useVM = !r.useVM
			io.WriteString(writer, style.Cyan(backendName(r.useVM))+"\n")
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, sess)
	}
}

func backendName(useVM bool) string {
	if useVM {
		return "switched to the bytecode VM back end"
	}
	return "switched to the tree-walking evaluator back end"
}

// executeWithRecovery parses and runs one line against sess's back end,
// recovering from any panic so a malformed line never kills the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, sess *session) {
	defer func() {
		if recovered := recover(); recovered != nil {
			io.WriteString(writer, style.Red("[RUNTIME ERROR] ")+style.Red(toString(recovered))+"\n")
		}
	}()

	program, errs := parser.Parse(line)
	if errs != nil {
		for _, err := range errs.Errors {
			io.WriteString(writer, style.Red(err.Error())+"\n")
		}
		return
	}

	if r.useVM {
		sess.runVM(writer, program)
		return
	}
	sess.runEvaluator(writer, program)
}

func toString(v interface{}) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return "panic"
}
