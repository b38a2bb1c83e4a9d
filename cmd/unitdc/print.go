package main

import (
	"fmt"
	"io"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/unitdc"
)

// printer writes interpreter outputs. Quantities go to out; messages go to
// msg unless writing YAML.
type printer struct {
	out io.Writer
	msg io.Writer
	enc *yaml.Encoder
}

func newPrinter(out, msg io.Writer, asYAML bool) *printer {
	p := printer{out: out, msg: msg}
	if asYAML {
		p.enc = yaml.NewEncoder(out)
		p.enc.SetIndent(2)
	}
	return &p
}

// yamlEvent is the document written for one output in YAML mode.
type yamlEvent struct {
	Quantity *unitdc.Quantity  `yaml:"quantity,omitempty"`
	List     []unitdc.Quantity `yaml:"list,omitempty"`
	Message  string            `yaml:"message,omitempty"`
}

func (p *printer) print(o unitdc.Output) {
	if p.enc != nil {
		var ev yamlEvent
		switch o := o.(type) {
		case *unitdc.QuantityOutput:
			ev.Quantity = &o.Quantity
		case *unitdc.ListOutput:
			ev.List = o.Quantities
		case *unitdc.MessageOutput:
			ev.Message = o.Text
		}
		if err := p.enc.Encode(ev); err != nil {
			log.Fatal(err)
		}
		return
	}
	switch o := o.(type) {
	case *unitdc.QuantityOutput:
		fmt.Fprintf(p.out, "[0]: %v\n", o.Quantity)
	case *unitdc.ListOutput:
		// Top of the stack first.
		for i := range o.Quantities {
			fmt.Fprintf(p.out, "[%d]: %v\n", i, o.Quantities[len(o.Quantities)-1-i])
		}
	case *unitdc.MessageOutput:
		fmt.Fprintf(p.msg, "message: %s\n", o.Text)
	}
}
