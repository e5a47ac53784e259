package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Uses ANSI terminal colors (0-15) so output adapts to the user's terminal
// theme.
var (
	helpDescStyle = lipgloss.NewStyle()

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("4")) // terminal blue

	helpNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")) // terminal cyan

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")) // terminal magenta

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("13")) // bright magenta
)

type helpEntry struct {
	name string
	desc string
}

func styledHelp(cmd *cobra.Command, _ []string) {
	var b strings.Builder

	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	if desc != "" {
		b.WriteString("\n  " + helpDescStyle.Render(desc) + "\n")
	}

	b.WriteString("\n  " + helpSectionStyle.Render("USAGE") + "\n\n")
	usageLine := cmd.UseLine()
	if cmd.HasAvailableSubCommands() {
		usageLine = cmd.CommandPath() + " [command] [flags]"
	}
	b.WriteString("    " + usageLine + "\n")

	var commands []helpEntry
	for _, c := range cmd.Commands() {
		if c.Hidden || c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		commands = append(commands, helpEntry{name: c.Name(), desc: c.Short})
	}
	writeSection(&b, "COMMANDS", commands, helpNameStyle)

	var flags []helpEntry
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := "    --" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + " --" + f.Name
		}
		desc := f.Usage
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" {
			desc += " " + helpDefaultStyle.Render("("+f.DefValue+")")
		}
		flags = append(flags, helpEntry{name: name, desc: desc})
	})
	writeSection(&b, "FLAGS", flags, helpFlagStyle)

	fmt.Print(b.String())
}

// writeSection renders a titled, column-aligned name/description block.
func writeSection(b *strings.Builder, title string, entries []helpEntry, nameStyle lipgloss.Style) {
	if len(entries) == 0 {
		return
	}

	maxLen := 0
	for _, e := range entries {
		if len(e.name) > maxLen {
			maxLen = len(e.name)
		}
	}

	b.WriteString("\n  " + helpSectionStyle.Render(title) + "\n\n")
	for _, e := range entries {
		name := nameStyle.Render(fmt.Sprintf("    %-*s", maxLen+2, e.name))
		b.WriteString(name + e.desc + "\n")
	}
}
