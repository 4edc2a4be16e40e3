package cli

// Command represents a CLI command type.
type Command int

const (
	// CommandNone represents no command or an unrecognized command.
	CommandNone Command = iota

	// CommandCheck represents the check command that probes every
	// dependency in the manifest. It is the default when no command
	// is given.
	CommandCheck

	// CommandList represents the list command that prints the manifest
	// entries without probing them.
	CommandList

	// CommandUI represents the ui command that runs the interactive
	// terminal interface.
	CommandUI

	// CommandVersion represents the version command for displaying build information.
	CommandVersion

	// CommandHelp represents the help command for showing usage information.
	CommandHelp
)

// String returns the command name as a string.
func (c Command) String() string {
	switch c {
	case CommandCheck:
		return "check"
	case CommandList:
		return "list"
	case CommandUI:
		return "ui"
	case CommandVersion:
		return "version"
	case CommandHelp:
		return "help"
	default:
		return ""
	}
}

// IsValid returns true if the command is a recognized command.
func (c Command) IsValid() bool {
	return c > CommandNone && c <= CommandHelp
}

// CommandInfo holds metadata about a command.
type CommandInfo struct {
	// Name is the primary command name.
	Name string

	// Aliases are alternative names for the command.
	Aliases []string

	// Description is a brief description of what the command does.
	Description string

	// Usage shows how to invoke the command.
	Usage string

	// LongDescription provides detailed help text for the command.
	LongDescription string
}

// Commands returns all available commands with their metadata.
func Commands() []CommandInfo {
	return []CommandInfo{
		{
			Name:        "check",
			Aliases:     []string{"c", "run"},
			Description: "Probe each dependency and report its availability",
			Usage:       "checkup check [flags]",
			LongDescription: `Probe each dependency in the manifest.

One line is printed per dependency, in manifest order: a check mark for
dependencies the environment can resolve, a cross for those it cannot.
The exit code is always zero; a missing dependency is a result, not an
error.

Flags:
  --manifest PATH   Probe the entries from a manifest file
  --json            Output results in JSON format
  --detail          Append resolution detail to each line

Examples:
  checkup check                      Probe the default dependencies
  checkup check --manifest deps.yaml Probe a custom manifest
  checkup check --json               Output as JSON for scripting`,
		},
		{
			Name:        "list",
			Aliases:     []string{"l", "ls"},
			Description: "List the manifest entries without probing them",
			Usage:       "checkup list [flags]",
			LongDescription: `List the dependencies that a check run would probe.

Flags:
  --manifest PATH   List the entries from a manifest file
  --json            Output the list in JSON format

Examples:
  checkup list           List the default dependencies
  checkup list --json    Output as JSON for scripting`,
		},
		{
			Name:        "ui",
			Aliases:     []string{"tui"},
			Description: "Run the checks in an interactive terminal interface",
			Usage:       "checkup ui [flags]",
			LongDescription: `Run the dependency checks interactively.

Shows a spinner while the probes run, then the per-dependency results.
Press r to re-run the checks and q to quit.

Flags:
  --manifest PATH   Probe the entries from a manifest file`,
		},
		{
			Name:        "version",
			Aliases:     []string{"v"},
			Description: "Show version information",
			Usage:       "checkup version",
			LongDescription: `Display version information about checkup.

Shows the version number, build time, and git commit hash.`,
		},
		{
			Name:        "help",
			Aliases:     []string{"h"},
			Description: "Show help for a command",
			Usage:       "checkup help [command]",
			LongDescription: `Display help information.

When called without arguments, shows general help and available commands.
When called with a command name, shows detailed help for that command.

Examples:
  checkup help        Show general help
  checkup help check  Show help for check command`,
		},
	}
}

// GetCommandInfo returns the CommandInfo for a given command.
// Returns nil if the command is not found.
func GetCommandInfo(cmd Command) *CommandInfo {
	if !cmd.IsValid() {
		return nil
	}

	cmds := Commands()
	for i := range cmds {
		if cmds[i].Name == cmd.String() {
			return &cmds[i]
		}
	}
	return nil
}

// ParseCommand parses a string into a Command.
// It recognizes both primary command names and aliases.
func ParseCommand(s string) Command {
	for _, info := range Commands() {
		if s == info.Name {
			return commandFromName(info.Name)
		}
		for _, alias := range info.Aliases {
			if s == alias {
				return commandFromName(info.Name)
			}
		}
	}
	return CommandNone
}

// commandFromName converts a command name string to a Command type.
func commandFromName(name string) Command {
	switch name {
	case "check":
		return CommandCheck
	case "list":
		return CommandList
	case "ui":
		return CommandUI
	case "version":
		return CommandVersion
	case "help":
		return CommandHelp
	default:
		return CommandNone
	}
}
