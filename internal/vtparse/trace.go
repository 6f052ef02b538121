package vtparse

import "github.com/vtparse/vtparse/internal/debug"

// TraceListener wraps an EventListener and logs every callback through a
// debug.Logger before forwarding it, the same "optional trace sink layered
// over the real handler" shape as a verbose escape-code parser trace mode.
// The core never constructs one itself; it exists for CLI/debug tooling.
type TraceListener struct {
	Listener EventListener
	Logger   *debug.Logger
}

func (t *TraceListener) Print(b byte) {
	t.Logger.Infof("print %q", string(rune(b)))
	t.Listener.Print(b)
}

func (t *TraceListener) PrintText(text []byte, cellCount int) {
	t.Logger.Infof("printText %q cells=%d", string(text), cellCount)
	t.Listener.PrintText(text, cellCount)
}

func (t *TraceListener) Execute(b byte) {
	t.Logger.Infof("execute 0x%02X", b)
	t.Listener.Execute(b)
}

func (t *TraceListener) Clear() {
	t.Logger.Infof("clear")
	t.Listener.Clear()
}

func (t *TraceListener) Collect(b byte) {
	t.Logger.Infof("collect %q", string(rune(b)))
	t.Listener.Collect(b)
}

func (t *TraceListener) CollectLeader(b byte) {
	t.Logger.Infof("collectLeader %q", string(rune(b)))
	t.Listener.CollectLeader(b)
}

func (t *TraceListener) Param(b byte) {
	t.Logger.Infof("param %q", string(rune(b)))
	t.Listener.Param(b)
}

func (t *TraceListener) ParamDigit(b byte) {
	t.Logger.Infof("paramDigit %q", string(rune(b)))
	t.Listener.ParamDigit(b)
}

func (t *TraceListener) ParamSeparator() {
	t.Logger.Infof("paramSeparator")
	t.Listener.ParamSeparator()
}

func (t *TraceListener) ParamSubSeparator() {
	t.Logger.Infof("paramSubSeparator")
	t.Listener.ParamSubSeparator()
}

func (t *TraceListener) DispatchESC(b byte) {
	t.Logger.Infof("dispatchESC %q", string(rune(b)))
	t.Listener.DispatchESC(b)
}

func (t *TraceListener) DispatchCSI(b byte) {
	t.Logger.Infof("dispatchCSI %q", string(rune(b)))
	t.Listener.DispatchCSI(b)
}

func (t *TraceListener) Hook(b byte) {
	t.Logger.Infof("hook %q", string(rune(b)))
	t.Listener.Hook(b)
}

func (t *TraceListener) Put(b byte) {
	t.Logger.Infof("put %q", string(rune(b)))
	t.Listener.Put(b)
}

func (t *TraceListener) Unhook() {
	t.Logger.Infof("unhook")
	t.Listener.Unhook()
}

func (t *TraceListener) StartOSC() {
	t.Logger.Infof("startOSC")
	t.Listener.StartOSC()
}

func (t *TraceListener) PutOSC(b byte) {
	t.Logger.Infof("putOSC %q", string(rune(b)))
	t.Listener.PutOSC(b)
}

func (t *TraceListener) DispatchOSC() {
	t.Logger.Infof("dispatchOSC")
	t.Listener.DispatchOSC()
}

func (t *TraceListener) StartAPC() {
	t.Logger.Infof("startAPC")
	t.Listener.StartAPC()
}

func (t *TraceListener) PutAPC(b byte) {
	t.Logger.Infof("putAPC %q", string(rune(b)))
	t.Listener.PutAPC(b)
}

func (t *TraceListener) DispatchAPC() {
	t.Logger.Infof("dispatchAPC")
	t.Listener.DispatchAPC()
}

func (t *TraceListener) StartPM() {
	t.Logger.Infof("startPM")
	t.Listener.StartPM()
}

func (t *TraceListener) PutPM(b byte) {
	t.Logger.Infof("putPM %q", string(rune(b)))
	t.Listener.PutPM(b)
}

func (t *TraceListener) DispatchPM() {
	t.Logger.Infof("dispatchPM")
	t.Listener.DispatchPM()
}

func (t *TraceListener) Error(message string) {
	t.Logger.Infof("error %s", message)
	t.Listener.Error(message)
}
