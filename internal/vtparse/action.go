package vtparse

// Action identifies the kind of event a table cell fires on the listener.
type Action int

const (
	// NoAction is the table sentinel meaning "no action for this byte in
	// this state" — named apart from Undefined to avoid colliding with
	// State's own Undefined sentinel in this package.
	NoAction Action = iota

	Ignore
	Print
	Execute
	Clear
	Collect
	CollectLeader
	Param
	ParamDigit
	ParamSeparator
	ParamSubSeparator
	EscDispatch
	CsiDispatch
	Hook
	Put
	Unhook
	OscStart
	OscPut
	OscEnd
	ApcStart
	ApcPut
	ApcEnd
	PmStart
	PmPut
	PmEnd
)

func (a Action) String() string {
	switch a {
	case Ignore:
		return "Ignore"
	case Print:
		return "Print"
	case Execute:
		return "Execute"
	case Clear:
		return "Clear"
	case Collect:
		return "Collect"
	case CollectLeader:
		return "CollectLeader"
	case Param:
		return "Param"
	case ParamDigit:
		return "ParamDigit"
	case ParamSeparator:
		return "ParamSeparator"
	case ParamSubSeparator:
		return "ParamSubSeparator"
	case EscDispatch:
		return "EscDispatch"
	case CsiDispatch:
		return "CsiDispatch"
	case Hook:
		return "Hook"
	case Put:
		return "Put"
	case Unhook:
		return "Unhook"
	case OscStart:
		return "OscStart"
	case OscPut:
		return "OscPut"
	case OscEnd:
		return "OscEnd"
	case ApcStart:
		return "ApcStart"
	case ApcPut:
		return "ApcPut"
	case ApcEnd:
		return "ApcEnd"
	case PmStart:
		return "PmStart"
	case PmPut:
		return "PmPut"
	case PmEnd:
		return "PmEnd"
	default:
		return "NoAction"
	}
}

// ActionClass qualifies when an action fires relative to a state change.
type ActionClass int

const (
	// Event fires for a same-state byte (no transition).
	Event ActionClass = iota
	// Transition fires on the byte that drives a state change.
	Transition
	// Enter fires once, right after a state change completes.
	Enter
	// Leave fires once, right before a state change begins.
	Leave
)
