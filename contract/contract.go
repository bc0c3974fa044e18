package contract

import (
	"fmt"
)

// Method kinds. Anything else in an interface file is reported and skipped
// at dispatch time.
const (
	KindView = "view"
	KindCall = "call"
)

// ParamSpec declares one parameter of a contract method: a logical type
// plus either a literal example or a numeric upper bound for generation.
type ParamSpec struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Example *string `json:"example,omitempty"`
	Max     *uint64 `json:"max,omitempty"`
}

// MethodSpec declares a contract method. Immutable after load.
type MethodSpec struct {
	Name   string      `json:"name"`
	Label  string      `json:"label"`
	Params []ParamSpec `json:"params"`
	Kind   string      `json:"type"`
}

// Interface is the deployed contract's declared method surface, in
// declaration order.
type Interface struct {
	Contract string       `json:"contract"`
	Methods  []MethodSpec `json:"methods"`
}

// FindMethod returns the method with the given name.
func (i *Interface) FindMethod(name string) (*MethodSpec, error) {
	for idx := range i.Methods {
		if i.Methods[idx].Name == name {
			return &i.Methods[idx], nil
		}
	}
	return nil, fmt.Errorf("method %q not declared by contract %s", name, i.Contract)
}
