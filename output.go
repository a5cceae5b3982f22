package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const prefixWarning = "[!]"

// Formatter renders a resolved invocation as a status line.
type Formatter interface {
	Format(command, module, description string, custom bool) error
}

var colorAttributes = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright-black":   color.FgHiBlack,
	"bright-red":     color.FgHiRed,
	"bright-green":   color.FgHiGreen,
	"bright-yellow":  color.FgHiYellow,
	"bright-blue":    color.FgHiBlue,
	"bright-magenta": color.FgHiMagenta,
	"bright-cyan":    color.FgHiCyan,
	"bright-white":   color.FgHiWhite,
	"bold":           color.Bold,
	"faint":          color.Faint,
}

// Printer writes one aligned, colorized line per call:
//
//	  CC     fullfat      Compiling ff_file.c
type Printer struct {
	out io.Writer
	cfg *Config
}

func NewPrinter(out io.Writer, cfg *Config) *Printer {
	if cfg == nil {
		cfg = &Config{}
	}
	applyDefaults(cfg)
	return &Printer{out: out, cfg: cfg}
}

func (p *Printer) Format(command, module, description string, custom bool) error {
	if _, err := fmt.Fprintln(p.out, p.Line(command, module, description, custom)); err != nil {
		return fmt.Errorf("write status line: %w", err)
	}
	return nil
}

// Line builds the status line without the trailing newline.
func (p *Printer) Line(command, module, description string, custom bool) string {
	f := p.cfg.Format

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", *f.Indent))
	b.WriteString(p.paint(p.commandColor(command, custom), command))
	b.WriteString(pad(command, *f.CommandWidth))
	b.WriteString(" ")
	b.WriteString(p.paint(*p.cfg.Colors.Module, module))
	b.WriteString(pad(module, *f.ModuleWidth))
	b.WriteString(" ")
	b.WriteString(p.paint(*p.cfg.Colors.Description, description))

	return strings.TrimRight(b.String(), " ")
}

// commandColor picks a per-command color first, then the color for the
// kind of invocation.
func (p *Printer) commandColor(command string, custom bool) string {
	if c, ok := p.cfg.Commands[command]; ok {
		return c
	}
	if custom {
		return *p.cfg.Colors.Custom
	}
	return *p.cfg.Colors.Command
}

func (p *Printer) paint(name, s string) string {
	if s == "" || name == "" {
		return s
	}
	attr, ok := colorAttributes[strings.ToLower(name)]
	if !ok {
		return s
	}

	c := color.New(attr)
	switch p.cfg.Format.Color {
	case colorAlways:
		c.EnableColor()
	case colorNever:
		c.DisableColor()
	}
	return c.Sprint(s)
}

// pad returns the spaces needed to fill s to width display columns.
func pad(s string, width int) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, prefixWarning+" "+format+"\n", a...)
}
