package main

// vebuildFlag marks an invocation made by the build system itself rather
// than by hand.
const vebuildFlag = "--vebuild"

// Placeholders printed when the caller omits an argument.
const (
	defaultCommand     = "??"
	defaultModule      = "Unknown"
	defaultDescription = "Please fix this somebody!"
)

// Args is the command line split into the optional leading flag and the
// positional values that follow it.
type Args struct {
	Custom      bool
	Positionals []string
}

// Invocation holds the values handed to a Formatter. Every field is set
// after Resolve, either from the command line or from its default.
type Invocation struct {
	Command     string
	Module      string
	Description string
	Custom      bool
}

// ParseArgs detects the --vebuild flag. Only an exact match in the first
// position counts; anything else is a positional value.
func ParseArgs(raw []string) Args {
	if len(raw) > 0 && raw[0] == vebuildFlag {
		return Args{Custom: false, Positionals: raw[1:]}
	}
	return Args{Custom: true, Positionals: raw}
}

// Resolve maps raw arguments to an Invocation. Positional slot 0 is never
// read; command, module and description come from slots 1, 2 and 3.
func Resolve(raw []string) Invocation {
	args := ParseArgs(raw)
	inv := Invocation{
		Command:     defaultCommand,
		Module:      defaultModule,
		Description: defaultDescription,
		Custom:      args.Custom,
	}

	pos := args.Positionals
	if len(pos) >= 2 {
		inv.Command = pos[1]
	}
	if len(pos) >= 3 {
		inv.Module = pos[2]
	}
	if len(pos) >= 4 {
		inv.Description = pos[3]
	}
	return inv
}

// Run resolves raw and passes the result to f.
func Run(raw []string, f Formatter) error {
	inv := Resolve(raw)
	Logger.Debug("resolved invocation",
		"command", inv.Command,
		"module", inv.Module,
		"description", inv.Description,
		"custom", inv.Custom,
	)
	return f.Format(inv.Command, inv.Module, inv.Description, inv.Custom)
}
