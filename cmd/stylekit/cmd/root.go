// Package cmd implements the stylekit CLI commands.
//
// The command structure follows standard Go CLI patterns with a root
// command that dispatches to subcommands (dump, lint).
package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/stylekit/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "stylekit",
	Short: "Stylekit - inspect and validate style theme files",
	Long: `Stylekit works with YAML theme files that declare named style chains.

Use "stylekit <command> --help" for more information about a command.`,
	Usage: "stylekit <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Printf("Stylekit CLI version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		err := errors.Newf("cli", errors.KindUnknown, "unknown command %q", cmdName)
		errors.Report(err)
		fmt.Fprintln(os.Stderr)
		printHelp(rootCmd)
		return err
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	if err := cmd.Run(cmdArgs); err != nil {
		reportError(cmd.Name, err)
		return err
	}
	return nil
}

// reportError routes a command failure through the framework error
// handler. Errors that are already structured pass through unchanged so
// their operation and kind survive; anything else is wrapped as a CLI
// error.
func reportError(cmdName string, err error) {
	if se, ok := err.(*errors.StyleError); ok {
		errors.Report(se)
		return
	}
	errors.Report(errors.New("cli."+cmdName, errors.KindUnknown, err))
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-10s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help       Show help for a command")
	fmt.Println("  -v, --version    Show version information")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Short)
	fmt.Println()
	if cmd.Long != "" {
		fmt.Println(cmd.Long)
		fmt.Println()
	}
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
