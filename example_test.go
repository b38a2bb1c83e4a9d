package unitdc_test

import (
	"fmt"

	"github.com/zephyrtronium/unitdc"
)

func ExampleInterpreter() {
	in, err := unitdc.New(func(o unitdc.Output) {
		switch o := o.(type) {
		case *unitdc.QuantityOutput:
			fmt.Println(o.Quantity)
		case *unitdc.ListOutput:
			fmt.Println(o.Quantities)
		case *unitdc.MessageOutput:
			fmt.Println(o.Text)
		}
	})
	if err != nil {
		panic(err)
	}
	in.Eval("1 (km) 500 (m) + p")
	in.Eval("c 100 (degC) (degF) p")
	in.Eval("c 60 (mi) 1 (h) 2 (km) 1 (h) / s p")
	in.Eval("1 (m) f")

	// Output:
	// 1.5 (km)
	// 212 (degF)
	// 96.56064 (km/h)
	// [96.56064 (km/h) 1 (m)]
}

func ExampleInterpreter_solve() {
	in, err := unitdc.New(func(o unitdc.Output) {
		if q, ok := o.(*unitdc.QuantityOutput); ok {
			fmt.Println(q.Quantity)
		}
	}, unitdc.NoPrelude())
	if err != nil {
		panic(err)
	}
	// The target 2 (m) 1 (s) / asks for a velocity from the two values
	// beneath it.
	err = in.Eval("@base(m) @base(s) 3 (m) 2 (s) 2 (m) 1 (s) / s p")
	fmt.Println(err)

	// Output:
	// 1.5 (m(s^-1))
	// <nil>
}
