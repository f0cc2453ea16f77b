package cmdr

// MapArgs is an easy way to map a command's arguments to variables (targets), and require a certain amount.
// If there are fewer than minArgs arguments, or more arguments than targets, an [InvalidNumberOfArguments] error is returned for the command.
// This makes it simple to validate arguments at the top of a [Handler] and return the error directly.
//
// There must be at least minArgs targets, and targets should not be nil.
// Violating this will panic, since it's a mistake in the handler rather than in the user's input.
func MapArgs(command string, args []string, minArgs int, targets ...*string) error {
	if len(targets) < minArgs {
		panic("not enough targets to satisfy minArgs")
	}
	if len(args) < minArgs || len(args) > len(targets) {
		return InvalidNumberOfArguments(command)
	}
	for i := 0; i < len(args); i++ {
		if targets[i] == nil {
			panic("nil argument target")
		}
		*targets[i] = args[i]
	}
	return nil
}
