package unitdc_test

import (
	"testing"

	"github.com/zephyrtronium/unitdc"
)

func FuzzEval(f *testing.F) {
	f.Add("2 (km) 1 (m) + p")
	f.Add("0 (degC) 0 (degC) + f")
	f.Add("3 (m) 2 (s) 2 (m) 1 (s) / s")
	f.Add("@base(x) 0 (x) 2 @derived(y) 1 (y) >v <v <v * U")
	f.Add("1e3_0.5 (1) # comment")
	f.Fuzz(func(t *testing.T, s string) {
		in, err := unitdc.New(nil)
		if err != nil {
			t.Fatal(err)
		}
		in.Eval(s)
	})
}
