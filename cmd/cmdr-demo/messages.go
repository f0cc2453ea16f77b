package main

import "github.com/saylorsolutions/cmdr"

// translations replace the runner's built-in diagnostics.
// A nil map means the defaults are used.
var translations = map[string]map[error]string{
	"en": nil,
	"nl": {
		cmdr.ErrInvalidCommand:           "Onbekend commando",
		cmdr.ErrInvalidNumberOfArguments: "Ongeldig aantal argumenten",
		cmdr.ErrNoHelpForCommand:         "Geen hulp beschikbaar",
		cmdr.ErrEmptyLine:                "Lege regel",
	},
}
