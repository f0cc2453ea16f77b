package cmdr

// Kind identifies what an [Action] asks the [Runner] to do next.
type Kind int

const (
	KindContinue Kind = iota // Read the next line in the current scope.
	KindQuit                 // Stop every running scope.
	KindExit                 // Stop the current scope and return to the one that pushed it.
	KindNewScope             // Replace the current scope with another.
	KindSubScope             // Run another scope to completion, then resume the current one.
)

func (k Kind) String() string {
	switch k {
	case KindContinue:
		return "Continue"
	case KindQuit:
		return "Quit"
	case KindExit:
		return "Exit"
	case KindNewScope:
		return "NewScope"
	case KindSubScope:
		return "SubScope"
	default:
		return "Unknown"
	}
}

// Action is returned from command handlers and hooks to drive the [Runner].
// The zero value is equivalent to [Continue].
type Action struct {
	kind  Kind
	scope Scope
}

var (
	Continue = Action{kind: KindContinue} // Continue proceeds to the next line.
	Quit     = Action{kind: KindQuit}     // Quit terminates the whole run, including any scopes that pushed the current one.
	Exit     = Action{kind: KindExit}     // Exit terminates only the current scope.
)

// NewScope creates an [Action] that replaces the current scope with the given one.
// There is no way back to the replaced scope.
//
// Passing a nil scope will panic.
func NewScope(scope Scope) Action {
	if scope == nil {
		panic("nil scope passed to NewScope")
	}
	return Action{kind: KindNewScope, scope: scope}
}

// SubScope creates an [Action] that runs the given scope until it exits, and then resumes the current scope.
//
// Passing a nil scope will panic.
func SubScope(scope Scope) Action {
	if scope == nil {
		panic("nil scope passed to SubScope")
	}
	return Action{kind: KindSubScope, scope: scope}
}

// Kind returns what this Action asks for.
func (a Action) Kind() Kind {
	return a.kind
}

// Scope returns the scope carried by a [NewScope] or [SubScope] action, and nil otherwise.
func (a Action) Scope() Scope {
	return a.scope
}

func (a Action) String() string {
	return a.kind.String()
}

// ends reports whether the Action stops the loop of the scope that produced it.
func (a Action) ends() bool {
	switch a.kind {
	case KindQuit, KindExit, KindNewScope:
		return true
	default:
		return false
	}
}
