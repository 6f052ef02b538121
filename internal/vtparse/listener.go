package vtparse

// EventListener is the sink the Parser drives. All calls are synchronous
// and delivered in the exact order the driving bytes were observed; a
// listener must not re-enter the Parser from within a callback.
type EventListener interface {
	// Print is fired once per byte that the table routes through the
	// Print action (fast-path misses, malformed UTF-8 fallthrough).
	Print(b byte)
	// PrintText is fired by the fast path for a batched run of printable
	// text; cellCount is the display-cell width of text, capped at the
	// Parser's maxCharCount.
	PrintText(text []byte, cellCount int)

	Execute(b byte)
	Clear()

	Collect(b byte)
	CollectLeader(b byte)

	Param(b byte)
	ParamDigit(b byte)
	ParamSeparator()
	ParamSubSeparator()

	DispatchESC(b byte)
	DispatchCSI(b byte)

	Hook(b byte)
	Put(b byte)
	Unhook()

	StartOSC()
	PutOSC(b byte)
	DispatchOSC()

	StartAPC()
	PutAPC(b byte)
	DispatchAPC()

	StartPM()
	PutPM(b byte)
	DispatchPM()

	Error(message string)
}

// fire maps a table Action to the matching EventListener callback. Ignore
// and NoAction never reach the listener.
func fire(l EventListener, a Action, b byte) {
	switch a {
	case Ignore, NoAction:
		return
	case Print:
		l.Print(b)
	case Execute:
		l.Execute(b)
	case Clear:
		l.Clear()
	case Collect:
		l.Collect(b)
	case CollectLeader:
		l.CollectLeader(b)
	case Param:
		l.Param(b)
	case ParamDigit:
		l.ParamDigit(b)
	case ParamSeparator:
		l.ParamSeparator()
	case ParamSubSeparator:
		l.ParamSubSeparator()
	case EscDispatch:
		l.DispatchESC(b)
	case CsiDispatch:
		l.DispatchCSI(b)
	case Hook:
		l.Hook(b)
	case Put:
		l.Put(b)
	case Unhook:
		l.Unhook()
	case OscStart:
		l.StartOSC()
	case OscPut:
		l.PutOSC(b)
	case OscEnd:
		l.DispatchOSC()
	case ApcStart:
		l.StartAPC()
	case ApcPut:
		l.PutAPC(b)
	case ApcEnd:
		l.DispatchAPC()
	case PmStart:
		l.StartPM()
	case PmPut:
		l.PutPM(b)
	case PmEnd:
		l.DispatchPM()
	}
}
