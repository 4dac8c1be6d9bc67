package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pkt.systems/typewriter"
	"pkt.systems/typewriter/ansi"
)

type ruleDoc struct {
	Start int    `yaml:"start"`
	End   *int   `yaml:"end,omitempty"`
	Style string `yaml:"style"`
	Text  string `yaml:"text"`
}

type lineDoc struct {
	Text            string    `yaml:"text"`
	Rules           []ruleDoc `yaml:"rules"`
	Terminator      string    `yaml:"terminator,omitempty"`
	TerminatorStyle string    `yaml:"terminator_style,omitempty"`
}

func scriptDoc(s typewriter.Script) []lineDoc {
	docs := make([]lineDoc, 0, s.Len())
	for _, line := range s.Lines() {
		runes := []rune(line.Text)
		doc := lineDoc{Text: line.Text}
		for _, r := range line.Rules {
			rd := ruleDoc{Start: r.Start, Style: r.Style.String()}
			end := len(runes)
			if !r.Unbounded() {
				e := r.End
				rd.End = &e
				end = r.End
			} else if line.Terminator != "" {
				end -= len([]rune(line.Terminator))
			}
			if r.Start >= 0 && r.Start <= end && end <= len(runes) {
				rd.Text = string(runes[r.Start:end])
			}
			doc.Rules = append(doc.Rules, rd)
		}
		if line.Terminator != "" {
			doc.Terminator = line.Terminator
			doc.TerminatorStyle = line.TerminatorStyle.String()
		}
		docs = append(docs, doc)
	}
	return docs
}

func newScriptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "script",
		Short: "Print the hero script and its token rules as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			script := typewriter.HeroScript()
			if err := script.Validate(); err != nil {
				a.logger.Warn("script.invalid")
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(scriptDoc(script)); err != nil {
				return fmt.Errorf("encode script: %w", err)
			}
			return enc.Close()
		},
	}
}

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy the install command to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := typewriter.CopyText(typewriter.SystemClipboard{}, typewriter.LogNotifier{Logger: a.logger}, typewriter.InstallCommand)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), typewriter.InstallCommand)
			return nil
		},
	}
}

func newPalettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List the built-in colour palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range ansi.AvailablePaletteNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
