/*
File    : weave/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is Weave's CLI entry point: bare REPL, file execution, or a
REPL-per-connection TCP server, following the teacher's `--help`/
`--version`/`server <port>`/`<path>` dispatch in main/main.go.
*/
package main

import (
	"net"
	"os"

	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/compiler"
	"github.com/akashmaji946/weave/evaluator"
	"github.com/akashmaji946/weave/object"
	"github.com/akashmaji946/weave/parser"
	"github.com/akashmaji946/weave/repl"
	"github.com/akashmaji946/weave/style"
	"github.com/akashmaji946/weave/vm"
)

var (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	prompt  = "weave >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
 █     █░▓█████ ▄▄▄    ██▒   █▓▓█████
▓█░ █ ░█░▓█   ▀▒████▄ ▓██░   █▒▓█   ▀
▒█░ █ ░█ ▒███  ▒██  ▀█▄▓██  █▒░▒███
░█░ █ ░█ ▒▓█  ▄░██▄▄▄▄██▒██ █░░▒▓█  ▄
░░██▒██▓ ░▒████▒▓█   ▓██▒▒▀█░  ░▒████▒
`
)

func main() {
	if len(os.Args) <= 1 {
		repl.NewRepl(banner, version, author, line, license, prompt).Start(os.Stdin, os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		if len(os.Args) < 3 {
			os.Stderr.WriteString(style.Red("[USAGE ERROR] missing port for server mode. Usage: weave server <port>\n"))
			os.Exit(1)
		}
		startServer(os.Args[2])
	case "--vm":
		if len(os.Args) < 3 {
			os.Stderr.WriteString(style.Red("[USAGE ERROR] --vm requires a file path. Usage: weave --vm <path>\n"))
			os.Exit(1)
		}
		runFile(os.Args[2], true)
	default:
		runFile(arg, false)
	}
}

func showHelp() {
	os.Stdout.WriteString(style.Cyan("Weave - a small expression-oriented scripting language\n"))
	os.Stdout.WriteString(style.Cyan("\nUSAGE:\n"))
	os.Stdout.WriteString(style.Yellow("  weave                    Start interactive REPL mode\n"))
	os.Stdout.WriteString(style.Yellow("  weave <path>             Execute a Weave file with the tree-walking evaluator\n"))
	os.Stdout.WriteString(style.Yellow("  weave --vm <path>        Execute a Weave file with the bytecode compiler + VM\n"))
	os.Stdout.WriteString(style.Yellow("  weave server <port>      Start a REPL server on the given TCP port\n"))
	os.Stdout.WriteString(style.Yellow("  weave --help             Display this help message\n"))
	os.Stdout.WriteString(style.Yellow("  weave --version          Display version information\n"))
}

func showVersion() {
	os.Stdout.WriteString(style.Cyan("Weave\n"))
	os.Stdout.WriteString(style.Cyan("Version: " + version + "\n"))
	os.Stdout.WriteString(style.Cyan("License: " + license + "\n"))
	os.Stdout.WriteString(style.Cyan("Author : " + author + "\n"))
}

// runFile reads path and executes it with the chosen back end, exiting
// non-zero on any parse or runtime error.
func runFile(path string, useVM bool) {
	source, err := os.ReadFile(path)
	if err != nil {
		os.Stderr.WriteString(style.Red("[FILE ERROR] could not read '"+path+"': "+err.Error()) + "\n")
		os.Exit(1)
	}

	program, errs := parser.Parse(string(source))
	if errs != nil {
		for _, e := range errs.Errors {
			os.Stderr.WriteString(style.Red("[PARSE ERROR] "+e.Error()) + "\n")
		}
		os.Exit(1)
	}

	if useVM {
		runFileVM(program)
		return
	}
	runFileEvaluator(program)
}

func runFileEvaluator(program *ast.Program) {
	ev := evaluator.New()
	ev.SetWriter(os.Stdout)
	reportResult(ev.Run(program))
}

func runFileVM(program *ast.Program) {
	comp := compiler.New()
	if err := comp.Compile(program); err != nil {
		os.Stderr.WriteString(style.Red("[COMPILE ERROR] "+err.Error()) + "\n")
		os.Exit(1)
	}

	machine := vm.New(comp.Bytecode())
	if err := machine.Run(); err != nil {
		os.Stderr.WriteString(style.Red("[RUNTIME ERROR] "+err.Error()) + "\n")
		os.Exit(1)
	}

	reportResult(machine.LastPoppedStackElem())
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		os.Stderr.WriteString(style.Red("[SERVER ERROR] failed to start server on port "+port+": "+err.Error()) + "\n")
		os.Exit(1)
	}
	os.Stdout.WriteString(style.Cyan("Weave REPL server listening on :" + port + "\n"))
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			os.Stderr.WriteString(style.Red("[SERVER ERROR] failed to accept connection: "+err.Error()) + "\n")
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	repl.NewRepl(banner, version, author, line, license, prompt).Start(conn, conn)
}

func reportResult(result object.Value) {
	if result == nil || result.Type() == object.VOID_OBJ {
		return
	}
	if result.Type() == object.ERROR_OBJ {
		os.Stderr.WriteString(style.Red(result.Inspect()) + "\n")
		os.Exit(1)
	}
	os.Stdout.WriteString(style.Yellow(result.Inspect()) + "\n")
}
