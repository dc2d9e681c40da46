package main

import (
	"fmt"
	"strings"

	"cantina/internal/page"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B8632B"))
	taglineStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#7A6A58"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#3C3228"))
	itemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#282828"))
	accentStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E6B478"))
)

func newDumpCmd() *cobra.Command {
	var section string
	var width int
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the brochure text to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sections []page.Section
			if section == "" {
				for _, tab := range page.Tabs() {
					sections = append(sections, tab.Section)
				}
			} else {
				sec, err := page.SectionFromString(section)
				if err != nil {
					return err
				}
				sections = []page.Section{sec}
			}
			fmt.Fprint(cmd.OutOrStdout(), dumpText(sections, max(20, width)))
			return nil
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "Only print this section")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width in columns")
	return cmd
}

// dumpText renders sections as styled terminal text wrapped at width columns.
func dumpText(sections []page.Section, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(page.Title) + "\n")
	b.WriteString(taglineStyle.Render(page.Tagline) + "\n")

	labels := map[page.Section]string{}
	for _, tab := range page.Tabs() {
		labels[tab.Section] = tab.Label
	}
	for _, sec := range sections {
		b.WriteString("\n" + headingStyle.Render(labels[sec]) + "\n\n")
		if sec == page.SectionMenu {
			writeItems(&b, page.MenuTitle, page.Dishes(), width)
			b.WriteString("\n")
			writeItems(&b, page.SpecialsTitle, page.Specials(), width)
			continue
		}
		c, ok := page.ContentFor(sec)
		if !ok {
			continue
		}
		b.WriteString(accentStyle.Render(c.Title) + "\n")
		for _, p := range c.Paragraphs {
			b.WriteString(itemStyle.Render(wordwrap.String(p, width)) + "\n")
		}
	}
	return b.String()
}

func writeItems(b *strings.Builder, title string, items []page.Item, width int) {
	b.WriteString(accentStyle.Render(title) + "\n")
	for i, it := range items {
		line := fmt.Sprintf("%d. %s", i+1, it.Name)
		b.WriteString(indent.String(itemStyle.Render(wordwrap.String(line, width-2)), 2) + "\n")
	}
}
