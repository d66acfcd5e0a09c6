// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/poruru/halide-build/internal/infra/config"
	"github.com/poruru/halide-build/internal/infra/interaction"
	"github.com/poruru/halide-build/internal/infra/runner"
	"github.com/poruru/halide-build/internal/infra/ui"
	"github.com/poruru/halide-build/internal/meta"
	"github.com/poruru/halide-build/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
type Dependencies struct {
	// Out receives command results (help, link flags, config, version).
	Out io.Writer
	// ErrOut receives progress logging; --quiet silences it.
	ErrOut        io.Writer
	Runner        runner.CommandRunner
	Prompter      interaction.Prompter
	Now           func() time.Time
	IsInteractive func() bool
	Emoji         bool
	Exit          func(int)
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Quiet      bool       `short:"q" help:"Disable logging to stderr"`
	HalidePath string     `short:"p" name:"halide-path" env:"HALIDE_PATH" default:"${halide_path}" help:"Path to Halide directory"`
	EnvFile    string     `name:"env-file" help:"Path to .env file"`
	Src        SrcCmd     `cmd:"" help:"Download, build and update Halide source"`
	Build      BuildCmd   `cmd:"" help:"Build Halide source files"`
	Run        RunCmd     `cmd:"" help:"Build and run Halide source files"`
	New        NewCmd     `cmd:"" help:"Create new Halide generator"`
	Link       LinkCmd    `cmd:"" help:"Print linker flags for library files"`
	Config     ConfigCmd  `cmd:"" help:"Manage configuration"`
	Version    VersionCmd `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// ToolchainFlags are shared by the build and run commands.
type ToolchainFlags struct {
	CXX       string `name:"cxx" env:"CXX" default:"${cxx}" help:"Set c++ compiler"`
	CXXFlags  string `name:"cxxflags" env:"CXXFLAGS" default:"${cxxflags}" help:"Set c++ compile flags"`
	LDFlags   string `name:"ldflags" env:"LDFLAGS" default:"${ldflags}" help:"Set c++ link flags"`
	TermInfo  string `name:"terminfo" env:"HALIDE_TERMINFO" default:"${terminfo}" help:"Terminal library link flag"`
	Generator bool   `short:"g" help:"Link with GenGen.cpp"`
	Shared    string `placeholder:"FILE" help:"Compile FILE into a shared library"`
}

type (
	SrcCmd struct {
		Make   string `short:"m" default:"${make}" help:"Make executable"`
		URL    string `name:"url" default:"${source_url}" help:"Halide repository"`
		Branch string `default:"${branch}" help:"Halide source branch"`
	}
	BuildCmd struct {
		Toolchain ToolchainFlags `embed:""`
		Name      string         `arg:"" help:"Output executable name"`
		Input     []string       `arg:"" help:"Input files"`
	}
	RunCmd struct {
		Toolchain ToolchainFlags `embed:""`
		Keep      bool           `short:"k" help:"Keep generated executables"`
		Input     []string       `arg:"" help:"Input files"`
	}
	NewCmd struct {
		Path  string `arg:"" help:"Output file"`
		Name  string `help:"Generator name (default: file name)"`
		Type  string `default:"float" help:"Buffer element type"`
		Dims  int    `default:"3" help:"Buffer dimensions"`
		Force bool   `short:"f" help:"Overwrite an existing file"`
	}
	LinkCmd struct {
		Libraries []string `arg:"" help:"Library files"`
		Cgo       bool     `help:"Print #cgo LDFLAGS directives"`
	}
	ConfigCmd struct {
		Path struct{} `cmd:"" help:"Print config file location"`
		Show struct{} `cmd:"" help:"Print effective configuration"`
		Init struct{} `cmd:"" help:"Write default configuration if missing"`
	}
)

// Run is the main entry point for CLI command execution.
// Arguments after "--" are passed through to make, the compiler, or the
// kernel depending on the command. Returns the exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	console := ui.NewWithOptions(errOut, deps.Emoji, hasQuietFlag(args))

	head, passthrough := splitPassthrough(args)
	if err := loadEnvFile(envFileFromArgs(head)); err != nil {
		console.Warn(err.Error())
	}

	cfgPath, err := config.Path()
	if err != nil {
		return exitWithError(console, err)
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return exitWithError(console, err)
	}

	cli := CLI{}
	options := []kong.Option{
		kong.Name(meta.AppName),
		kong.Description(meta.Description),
		kong.Writers(out, errOut),
		kongVars(cfg),
	}
	if deps.Exit != nil {
		options = append(options, kong.Exit(deps.Exit))
	}
	parser, err := kong.New(&cli, options...)
	if err != nil {
		return exitWithError(console, err)
	}

	if commandName(head) == "" {
		return printHelp(parser, console)
	}

	kctx, err := parser.Parse(head)
	if err != nil {
		fmt.Fprintf(errOut, "%s: error: %v\n", meta.AppName, err)
		return 1
	}
	console.Quiet = cli.Quiet

	cmdCtx := commandContext{
		ctx:         context.Background(),
		cli:         cli,
		deps:        deps,
		out:         out,
		console:     console,
		cfg:         cfg,
		cfgPath:     cfgPath,
		passthrough: passthrough,
	}
	if len(passthrough) > 0 && !acceptsPassthrough(kctx.Command()) {
		console.Warn(fmt.Sprintf("ignoring arguments after --: %s", strings.Join(passthrough, " ")))
	}
	if exitCode, handled := dispatchCommand(kctx.Command(), cmdCtx); handled {
		return exitCode
	}

	console.Error("unknown command")
	return 1
}

type commandHandler func(commandContext) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, c commandContext) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"src":         runSrc,
		"config path": runConfigPath,
		"config show": runConfigShow,
		"config init": runConfigInit,
		"version":     runVersion,
	}
	if handler, ok := exactHandlers[command]; ok {
		return handler(c), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "build", handler: runBuild},
		{prefix: "run", handler: runRun},
		{prefix: "new", handler: runNew},
		{prefix: "link", handler: runLink},
	}
	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(c), true
		}
	}
	return 1, false
}

// acceptsPassthrough reports whether the command forwards args after "--"
// to make, the compiler, or the kernel.
func acceptsPassthrough(command string) bool {
	for _, prefix := range []string{"src", "build", "run"} {
		if command == prefix || strings.HasPrefix(command, prefix+" ") {
			return true
		}
	}
	return false
}

// runVersion prints the version information of the CLI.
func runVersion(c commandContext) int {
	fmt.Fprintln(c.out, version.GetVersion())
	return 0
}

func printHelp(parser *kong.Kong, console *ui.Console) int {
	kctx, err := kong.Trace(parser, nil)
	if err != nil {
		return exitWithError(console, err)
	}
	if err := kong.DefaultHelpPrinter(kong.HelpOptions{Compact: true}, kctx); err != nil {
		return exitWithError(console, err)
	}
	return 0
}
