package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/deque"
)

// op is a single step of an operation script, e.g. "push-back:100".
type op struct {
	name string
	args []int
}

var opArity = map[string]int{
	"push-back":  1,
	"push-front": 1,
	"pop-back":   1,
	"pop-front":  1,
	"insert":     2,
	"erase":      1,
	"clear":      0,
}

var errSyntax = errors.New("script syntax error")

func (o op) String() string {
	s := o.name
	for _, a := range o.args {
		s += ":" + strconv.Itoa(a)
	}
	return s
}

func parseScript(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ":")
		arity, ok := opArity[parts[0]]
		if !ok {
			return nil, fmt.Errorf("%w: unknown operation %q", errSyntax, parts[0])
		}
		if len(parts)-1 != arity {
			return nil, fmt.Errorf("%w: %q takes %d argument(s)", errSyntax, parts[0], arity)
		}
		o := op{name: parts[0]}
		for _, p := range parts[1:] {
			n, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a number", errSyntax, p)
			}
			o.args = append(o.args, n)
		}
		ops = append(ops, o)
	}
	return ops, nil
}

func (o op) apply(d *deque.Deque[int]) error {
	switch o.name {
	case "push-back":
		for i := 0; i < o.args[0]; i++ {
			d.PushBack(i)
		}
	case "push-front":
		for i := 0; i < o.args[0]; i++ {
			d.PushFront(i)
		}
	case "pop-back":
		for i := 0; i < o.args[0]; i++ {
			if _, err := d.PopBack(); err != nil {
				return err
			}
		}
	case "pop-front":
		for i := 0; i < o.args[0]; i++ {
			if _, err := d.PopFront(); err != nil {
				return err
			}
		}
	case "insert":
		it, err := d.Begin().Add(o.args[0])
		if err != nil {
			return err
		}
		_, err = d.Insert(it, o.args[1])
		return err
	case "erase":
		it, err := d.Begin().Add(o.args[0])
		if err != nil {
			return err
		}
		_, err = d.Erase(it)
		return err
	case "clear":
		d.Clear()
	}
	return nil
}
