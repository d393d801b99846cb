// Package query selects document nodes with boolean expressions.
//
// Expressions use the expr language and see one node at a time through
// the fields of Env:
//
//	tag == "Text" && depth > 1
//	type == "Leaf" && text contains "email"
//	attrs["phx-submit"] == "login"
//	"disabled" in attrs
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/liveview-native/core-go/dom"
)

var ErrQuery = errors.New("query error")

// Env is the view of one node seen by an expression. Attribute keys are
// qualified names; bare attributes map to "".
type Env struct {
	Ref       int               `expr:"ref"`
	Parent    int               `expr:"parent"`
	Type      string            `expr:"type"`
	Namespace string            `expr:"namespace"`
	Tag       string            `expr:"tag"`
	Text      string            `expr:"text"`
	Attrs     map[string]string `expr:"attrs"`
	Depth     int               `expr:"depth"`
}

type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates the filter against ref.
func (f *Filter) Match(doc *dom.Document, ref dom.NodeRef, depth int) (bool, error) {
	env, err := NodeEnv(doc, ref, depth)
	if err != nil {
		return false, err
	}
	res, err := expr.Run(f.prg, *env)
	if err != nil {
		return false, fmt.Errorf("%w: %s at %s: %w", ErrQuery, f.src, ref, err)
	}
	b, _ := res.(bool)
	return b, nil
}

// Select returns the attached nodes below start, in document order, for
// which the filter holds. start itself is not a candidate.
func (f *Filter) Select(doc *dom.Document, start dom.NodeRef) ([]dom.NodeRef, error) {
	var (
		res  []dom.NodeRef
		rErr error
	)
	err := doc.Walk(start, func(ref dom.NodeRef, depth int) bool {
		if rErr != nil {
			return false
		}
		if ref == start {
			return true
		}
		ok, err := f.Match(doc, ref, depth)
		if err != nil {
			rErr = err
			return false
		}
		if ok {
			res = append(res, ref)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if rErr != nil {
		return nil, rErr
	}
	return res, nil
}

// NodeEnv builds the expression environment for ref. Parent is -1 for
// the root and for detached nodes.
func NodeEnv(doc *dom.Document, ref dom.NodeRef, depth int) (*Env, error) {
	n, err := doc.Lookup(ref)
	if err != nil {
		return nil, err
	}
	env := &Env{
		Ref:    int(ref),
		Parent: -1,
		Type:   n.Type.String(),
		Attrs:  map[string]string{},
		Depth:  depth,
	}
	if p, ok, _ := doc.Parent(ref); ok {
		env.Parent = int(p)
	}
	switch n.Type {
	case dom.LeafType:
		env.Text = n.Text
	case dom.ElementType:
		env.Namespace = n.Name.Namespace
		env.Tag = n.Name.Local
		for _, a := range n.Attributes {
			if _, dup := env.Attrs[a.Name.String()]; dup {
				continue
			}
			env.Attrs[a.Name.String()] = a.ValueString()
		}
	}
	return env, nil
}
