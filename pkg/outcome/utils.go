package outcome

import (
	"reflect"
	"runtime"
	"strings"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Causes returns o followed by every record reachable through Inner,
// most recent failure first and root cause last.
func Causes(o Outcome) []Outcome {
	if IsNil(o) {
		return []Outcome{}
	}

	chain := make([]Outcome, 0, 4)
	for cur := o; !IsNil(cur); cur = cur.Inner() {
		chain = append(chain, cur)
	}
	return chain
}

// Root returns the last record of the cause chain, o itself when it has no
// inner record.
func Root(o Outcome) Outcome {
	chain := Causes(o)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

// Depth counts the inner links below o.
func Depth(o Outcome) int {
	if IsNil(o) {
		return 0
	}
	return len(Causes(o)) - 1
}

// FuncName returns the short name of a function value: package path and
// receiver are dropped, so (*Store).Save and store.Save both yield "Save".
// Anonymous functions yield names such as "func1".
func FuncName(fn any) string {
	if IsNil(fn) {
		return ""
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}

	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	// method values carry a "-fm" suffix
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
