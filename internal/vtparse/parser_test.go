package vtparse

import (
	"reflect"
	"testing"
)

// recorder is an EventListener that records every callback as a string,
// letting tests assert on the exact callback sequence a byte stream
// produces.
type recorder struct {
	calls []string
}

func (r *recorder) add(s string) { r.calls = append(r.calls, s) }

func (r *recorder) Print(b byte)                 { r.add("Print(" + string(rune(b)) + ")") }
func (r *recorder) PrintText(text []byte, n int)  { r.add("PrintText(" + string(text) + "," + itoa(n) + ")") }
func (r *recorder) Execute(b byte)                { r.add("Execute(" + hex(b) + ")") }
func (r *recorder) Clear()                        { r.add("Clear()") }
func (r *recorder) Collect(b byte)                { r.add("Collect(" + string(rune(b)) + ")") }
func (r *recorder) CollectLeader(b byte)          { r.add("CollectLeader(" + string(rune(b)) + ")") }
func (r *recorder) Param(b byte)                  { r.add("Param(" + string(rune(b)) + ")") }
func (r *recorder) ParamDigit(b byte)              { r.add("ParamDigit(" + string(rune(b)) + ")") }
func (r *recorder) ParamSeparator()                { r.add("ParamSeparator()") }
func (r *recorder) ParamSubSeparator()             { r.add("ParamSubSeparator()") }
func (r *recorder) DispatchESC(b byte)             { r.add("DispatchESC(" + string(rune(b)) + ")") }
func (r *recorder) DispatchCSI(b byte)             { r.add("DispatchCSI(" + string(rune(b)) + ")") }
func (r *recorder) Hook(b byte)                    { r.add("Hook(" + string(rune(b)) + ")") }
func (r *recorder) Put(b byte)                     { r.add("Put(" + hex(b) + ")") }
func (r *recorder) Unhook()                        { r.add("Unhook()") }
func (r *recorder) StartOSC()                      { r.add("StartOSC()") }
func (r *recorder) PutOSC(b byte)                  { r.add("PutOSC(" + string(rune(b)) + ")") }
func (r *recorder) DispatchOSC()                   { r.add("DispatchOSC()") }
func (r *recorder) StartAPC()                      { r.add("StartAPC()") }
func (r *recorder) PutAPC(b byte)                  { r.add("PutAPC(" + string(rune(b)) + ")") }
func (r *recorder) DispatchAPC()                   { r.add("DispatchAPC()") }
func (r *recorder) StartPM()                       { r.add("StartPM()") }
func (r *recorder) PutPM(b byte)                   { r.add("PutPM(" + string(rune(b)) + ")") }
func (r *recorder) DispatchPM()                    { r.add("DispatchPM()") }
func (r *recorder) Error(message string)           { r.add("Error(" + message + ")") }

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func hex(b byte) string {
	const digits = "0123456789ABCDEF"
	return "0x" + string(digits[b>>4]) + string(digits[b&0xF])
}

func TestGroundPrintAndNewline(t *testing.T) {
	rec := &recorder{}
	p := NewParser(rec, 0)
	p.ParseFragment([]byte("hi\n"))

	want := []string{"PrintText(hi,2)", "Execute(0x0A)"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestCSIDispatchSGR(t *testing.T) {
	rec := &recorder{}
	p := NewParser(rec, 0)
	p.ParseFragment([]byte("\x1b[31;1mX"))

	want := []string{
		"Clear()", "Clear()",
		"ParamDigit(3)", "ParamDigit(1)",
		"ParamSeparator()",
		"ParamDigit(1)",
		"DispatchCSI(m)",
		"PrintText(X,1)",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	if p.CurrentState() != Ground {
		t.Fatalf("state = %v, want Ground", p.CurrentState())
	}
}

func TestOSCSetTitle(t *testing.T) {
	rec := &recorder{}
	p := NewParser(rec, 0)
	p.ParseFragment([]byte("\x1b]0;hello\x07"))

	want := []string{
		"Clear()",
		"StartOSC()",
		"PutOSC(0)", "PutOSC(;)", "PutOSC(h)", "PutOSC(e)", "PutOSC(l)", "PutOSC(l)", "PutOSC(o)",
		"DispatchOSC()",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	if p.CurrentState() != Ground {
		t.Fatalf("state = %v, want Ground", p.CurrentState())
	}
}

func TestAnywhereCancelMidCSI(t *testing.T) {
	rec := &recorder{}
	p := NewParser(rec, 0)
	p.ParseFragment([]byte("\x1b[3\x18X"))

	want := []string{"Clear()", "Clear()", "ParamDigit(3)", "PrintText(X,1)"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	if p.CurrentState() != Ground {
		t.Fatalf("state = %v, want Ground", p.CurrentState())
	}
}

func TestResumabilityAcrossArbitrarySplits(t *testing.T) {
	input := []byte("\x1b[31;1mX\x1b]0;hi\x07y")

	whole := &recorder{}
	NewParser(whole, 0).ParseFragment(input)

	for split := 0; split <= len(input); split++ {
		split := split
		t.Run(itoa(split), func(t *testing.T) {
			rec := &recorder{}
			p := NewParser(rec, 0)
			p.ParseFragment(input[:split])
			p.ParseFragment(input[split:])
			if !reflect.DeepEqual(rec.calls, whole.calls) {
				t.Fatalf("split at %d: calls = %v, want %v", split, rec.calls, whole.calls)
			}
		})
	}
}

func TestResetReturnsToGround(t *testing.T) {
	rec := &recorder{}
	p := NewParser(rec, 0)
	p.ParseFragment([]byte("\x1b[31"))
	if p.CurrentState() == Ground {
		t.Fatalf("expected non-Ground state mid-sequence")
	}
	p.Reset()
	if p.CurrentState() != Ground {
		t.Fatalf("state = %v after Reset, want Ground", p.CurrentState())
	}
}

func TestFastPathDisabledPrintsPerByte(t *testing.T) {
	rec := &recorder{}
	p := NewParser(rec, 0)
	p.SetFastPathEnabled(false)
	p.ParseFragment([]byte("hi"))

	want := []string{"Print(h)", "Print(i)"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestUnicodeFastPathMeasuresWidth(t *testing.T) {
	rec := &recorder{}
	p := NewParser(rec, 0)
	p.ParseFragment([]byte("é"))

	want := []string{"PrintText(é,1)"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestMaxCharCountCapsFastPath(t *testing.T) {
	rec := &recorder{}
	p := NewParser(rec, 3)
	p.ParseFragment([]byte("abcdef"))

	want := []string{"PrintText(abc,3)", "PrintText(def,3)"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestUndefinedNeverCurrentState(t *testing.T) {
	p := NewParser(&recorder{}, 0)
	if p.CurrentState() == Undefined {
		t.Fatalf("fresh parser state is Undefined")
	}
}
