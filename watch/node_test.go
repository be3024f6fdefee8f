package watch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/signadot/jsonwatch/observe"
	"github.com/signadot/jsonwatch/value"
)

// samples holds one value of every shape, keyed by a short name.
func samples() map[string]any {
	return map[string]any{
		"string":    "String",
		"number":    7,
		"null":      nil,
		"undefined": value.Undefined,
		"object":    map[string]any{"some": "data", "and": map[string]any{"nested": "stuff"}},
		"array":     []any{"some", map[string]any{"array": "data"}},
	}
}

type emission struct {
	path string
	v    any
}

func (e emission) String() string {
	return fmt.Sprintf("%q=%v", e.path, e.v)
}

// record subscribes to every node and appends what they emit, in order,
// to a shared log.
func record(nodes ...*Node) *[]emission {
	log := &[]emission{}
	for _, n := range nodes {
		path := n.Path()
		n.On(func(v any) {
			*log = append(*log, emission{path: path, v: v})
		})
	}
	return log
}

func checkEmissions(t *testing.T, got []emission, want ...emission) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got emissions %v, want %v", got, want)
	}
	for i := range want {
		if got[i].path != want[i].path || !value.Equal(got[i].v, want[i].v) {
			t.Fatalf("emission %d: got %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func mustChild(t *testing.T, n *Node, path string) *Node {
	t.Helper()
	c, err := n.Child(path)
	if err != nil {
		t.Fatalf("Child(%q): %v", path, err)
	}
	return c
}

func TestRootChange(t *testing.T) {
	for from, fv := range samples() {
		for to, tv := range samples() {
			if from == to {
				continue
			}
			t.Run(from+" -> "+to, func(t *testing.T) {
				root := New(fv)
				r := observe.NewRecorder()
				root.On(r.Handler())
				if err := root.SetRoot(tv); err != nil {
					t.Fatal(err)
				}
				got := r.Values()
				if len(got) != 1 || !value.Equal(got[0], tv) {
					t.Errorf("got %v, want one emission of %v", got, tv)
				}
			})
		}
	}
}

func TestRootStable(t *testing.T) {
	for name, v := range samples() {
		t.Run(name, func(t *testing.T) {
			root := New(nil)
			if err := root.SetRoot(v); err != nil {
				t.Fatal(err)
			}
			r := observe.NewRecorder()
			root.On(r.Handler())
			if err := root.SetRoot(value.Clone(v)); err != nil {
				t.Fatal(err)
			}
			if r.Len() != 0 {
				t.Errorf("unexpected emissions %v", r.Values())
			}
		})
	}
}

func TestChildChange(t *testing.T) {
	for from, fv := range samples() {
		for to, tv := range samples() {
			if from == to {
				continue
			}
			t.Run(from+" -> "+to, func(t *testing.T) {
				root := New(map[string]any{"prop": fv})
				child := mustChild(t, root, "prop")
				r := observe.NewRecorder()
				child.On(r.Handler())
				if err := root.SetRoot(map[string]any{"prop": tv}); err != nil {
					t.Fatal(err)
				}
				got := r.Values()
				if len(got) != 1 || !value.Equal(got[0], tv) {
					t.Errorf("got %v, want one emission of %v", got, tv)
				}
			})
		}
	}
}

func TestChildStable(t *testing.T) {
	for name, v := range samples() {
		t.Run(name, func(t *testing.T) {
			root := New(map[string]any{"prop": v})
			child := mustChild(t, root, "prop")
			r := observe.NewRecorder()
			child.On(r.Handler())
			if err := root.SetRoot(map[string]any{"prop": value.Clone(v)}); err != nil {
				t.Fatal(err)
			}
			if r.Len() != 0 {
				t.Errorf("unexpected emissions %v", r.Values())
			}
		})
	}
}

func TestChildStableWhenSiblingChanges(t *testing.T) {
	root := New(map[string]any{"a": 1, "b": 2})
	a := mustChild(t, root, "a")
	b := mustChild(t, root, "b")
	log := record(root, a, b)

	if err := root.SetRoot(map[string]any{"a": 1, "b": 3}); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log,
		emission{"", map[string]any{"a": 1, "b": 3}},
		emission{"b", 3})
}

func TestFanOutOrder(t *testing.T) {
	root := New(map[string]any{"prop": 0})
	child := mustChild(t, root, "prop")
	log := record(child, root)

	if err := root.SetRoot(map[string]any{"prop": 5}); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log,
		emission{"", map[string]any{"prop": 5}},
		emission{"prop", 5})
}

func TestFanOutDeep(t *testing.T) {
	root := New(map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}})
	c := mustChild(t, root, "a.b.c")
	b := c.Parent()
	a := b.Parent()
	log := record(c, b, a, root)

	if err := root.SetRoot(map[string]any{"a": map[string]any{"b": map[string]any{"c": 2}}}); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log,
		emission{"", map[string]any{"a": map[string]any{"b": map[string]any{"c": 2}}}},
		emission{"a", map[string]any{"b": map[string]any{"c": 2}}},
		emission{"a.b", map[string]any{"c": 2}},
		emission{"a.b.c", 2})
}

func TestFanOutNonObject(t *testing.T) {
	root := New(map[string]any{"a": map[string]any{"b": 1}})
	b := mustChild(t, root, "a.b")
	log := record(b)

	if err := root.SetRoot(map[string]any{"a": 5}); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log, emission{"a.b", value.Undefined})
	if err := root.SetRoot(nil); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log, emission{"a.b", value.Undefined})
}

func TestSetPropagatesUp(t *testing.T) {
	for name, v := range samples() {
		t.Run(name, func(t *testing.T) {
			root := New(map[string]any{"prop": 0})
			child := mustChild(t, root, "prop")
			log := record(root, child)

			if err := child.Set(v); err != nil {
				t.Fatal(err)
			}
			checkEmissions(t, *log,
				emission{"", map[string]any{"prop": v}},
				emission{"prop", v})
			if !value.Equal(root.Value(), map[string]any{"prop": v}) {
				t.Errorf("root value %v", root.Value())
			}
		})
	}
}

func TestSetDeep(t *testing.T) {
	root := New(map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}, "x": true}})
	c := mustChild(t, root, "a.b.c")
	x := mustChild(t, root, "a.x")
	b := c.Parent()
	log := record(root, b.Parent(), b, c, x)

	if err := c.Set("deep"); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log,
		emission{"", map[string]any{"a": map[string]any{"b": map[string]any{"c": "deep"}, "x": true}}},
		emission{"a", map[string]any{"b": map[string]any{"c": "deep"}, "x": true}},
		emission{"a.b", map[string]any{"c": "deep"}},
		emission{"a.b.c", "deep"})
}

func TestSetCreatesKey(t *testing.T) {
	root := New(map[string]any{})
	child := mustChild(t, root, "fresh")
	log := record(root, child)

	if err := child.Set(map[string]any{"k": 1}); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log,
		emission{"", map[string]any{"fresh": map[string]any{"k": 1}}},
		emission{"fresh", map[string]any{"k": 1}})
}

func TestSetSameValue(t *testing.T) {
	root := New(map[string]any{"prop": 3})
	child := mustChild(t, root, "prop")
	log := record(root, child)

	if err := child.Set(3.0); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log)
}

func TestSetReachesSibling(t *testing.T) {
	root := New(map[string]any{"a": map[string]any{"b": 1, "c": 2}})
	b := mustChild(t, root, "a.b")
	c, err := b.Child("<c")
	if err != nil {
		t.Fatal(err)
	}
	whole := mustChild(t, root, "a")
	log := record(b, c, whole)

	if err := c.Set(20); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log,
		emission{"a", map[string]any{"b": 1, "c": 20}},
		emission{"a.c", 20})
}

func TestSetOnRoot(t *testing.T) {
	root := New(1)
	log := record(root)
	if err := root.Set(2); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log, emission{"", 2})
}

func TestDelete(t *testing.T) {
	root := New(map[string]any{"prop": 0})
	child := mustChild(t, root, "prop")
	log := record(root, child)

	if err := child.Delete(); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log,
		emission{"", map[string]any{}},
		emission{"prop", value.Undefined})
	if got := root.Value().(map[string]any); len(got) != 0 {
		t.Errorf("root value %v, want empty object", got)
	}
}

func TestDeleteMissing(t *testing.T) {
	root := New(map[string]any{"other": 1})
	child := mustChild(t, root, "prop")
	log := record(root, child)

	if err := child.Delete(); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log)
}

func TestDeleteRoot(t *testing.T) {
	root := New(map[string]any{"prop": 0})
	child := mustChild(t, root, "prop")
	log := record(root, child)

	if err := root.Delete(); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log,
		emission{"", value.Undefined},
		emission{"prop", value.Undefined})
}

func TestWriteNonObjectParent(t *testing.T) {
	tests := []struct {
		name string
		root any
		path string
	}{
		{"number root", 7, "prop"},
		{"null root", nil, "prop"},
		{"undefined root", value.Undefined, "prop"},
		{"array root", []any{1, 2}, "0"},
		{"string root", "s", "prop"},
		{"number ancestor", map[string]any{"a": 5}, "a.b"},
		{"missing ancestor", map[string]any{}, "a.b.c"},
		{"array ancestor", map[string]any{"list": []any{map[string]any{"x": 1}}}, "list.0.x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New(tt.root)
			child := mustChild(t, root, tt.path)
			nodes := []*Node{root}
			for n := child; n != root; n = n.Parent() {
				nodes = append(nodes, n)
			}
			log := record(nodes...)
			before := root.Value()

			if err := child.Set(1); !errors.Is(err, ErrNonObjectParent) {
				t.Errorf("Set: got %v, want ErrNonObjectParent", err)
			}
			if err := child.Delete(); !errors.Is(err, ErrNonObjectParent) {
				t.Errorf("Delete: got %v, want ErrNonObjectParent", err)
			}
			checkEmissions(t, *log)
			if !value.Equal(before, root.Value()) {
				t.Errorf("root changed from %v to %v", before, root.Value())
			}
		})
	}
}

func TestSetRootNotRoot(t *testing.T) {
	root := New(map[string]any{"a": 1})
	a := mustChild(t, root, "a")
	if err := a.SetRoot(2); !errors.Is(err, ErrNotRoot) {
		t.Errorf("got %v, want ErrNotRoot", err)
	}
	if !value.Equal(a.Value(), 1) {
		t.Errorf("value changed to %v", a.Value())
	}
}

func TestArrayElementChild(t *testing.T) {
	root := New(map[string]any{"list": []any{"a", "b"}})
	second := mustChild(t, root, "list.1")
	if !value.Equal(second.Value(), "b") {
		t.Fatalf("list.1 = %v", second.Value())
	}
	log := record(second)
	if err := root.SetRoot(map[string]any{"list": []any{"a", "c"}}); err != nil {
		t.Fatal(err)
	}
	if err := root.SetRoot(map[string]any{"list": []any{"a"}}); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log,
		emission{"list.1", "c"},
		emission{"list.1", value.Undefined})
}

func TestValueIsCopy(t *testing.T) {
	input := map[string]any{"a": map[string]any{"b": 1}}
	root := New(input)
	a := mustChild(t, root, "a")

	input["a"].(map[string]any)["b"] = "mutated input"
	a.Value().(map[string]any)["b"] = "mutated read"
	var emitted map[string]any
	root.On(func(v any) {
		emitted = v.(map[string]any)
	})
	if err := root.SetRoot(map[string]any{"a": map[string]any{"b": 2}}); err != nil {
		t.Fatal(err)
	}
	emitted["a"].(map[string]any)["b"] = "mutated emission"

	if !value.Equal(root.Value(), map[string]any{"a": map[string]any{"b": 2}}) {
		t.Errorf("root value corrupted: %v", root.Value())
	}
	if !value.Equal(a.Value(), map[string]any{"b": 2}) {
		t.Errorf("child value corrupted: %v", a.Value())
	}
}

func TestSetCopiesInput(t *testing.T) {
	root := New(map[string]any{})
	child := mustChild(t, root, "obj")
	in := map[string]any{"k": []any{1}}
	if err := child.Set(in); err != nil {
		t.Fatal(err)
	}
	in["k"].([]any)[0] = 2
	if !value.Equal(child.Value(), map[string]any{"k": []any{1}}) {
		t.Errorf("child value aliases input: %v", child.Value())
	}
}

func TestReentrantWrite(t *testing.T) {
	root := New(map[string]any{"src": 0, "dst": 0})
	src := mustChild(t, root, "src")
	dst := mustChild(t, root, "dst")
	src.On(func(v any) {
		if err := dst.Set(v); err != nil {
			t.Error(err)
		}
	})
	log := record(dst)

	if err := src.Set(4); err != nil {
		t.Fatal(err)
	}
	checkEmissions(t, *log, emission{"dst", 4})
	if !value.Equal(root.Value(), map[string]any{"src": 4, "dst": 4}) {
		t.Errorf("root value %v", root.Value())
	}
}

func TestReentrantWriteDuringFanOut(t *testing.T) {
	root := New(map[string]any{"b": map[string]any{"x": 1, "y": 1}})
	b := mustChild(t, root, "b")
	y := mustChild(t, root, "b.y")
	written := false
	root.On(func(any) {
		if written {
			return
		}
		written = true
		if err := y.Set(99); err != nil {
			t.Error(err)
		}
	})
	log := record(b, y)

	if err := root.SetRoot(map[string]any{"b": map[string]any{"x": 2, "y": 1}}); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"b": map[string]any{"x": 2, "y": 99}}
	if !value.Equal(root.Value(), want) {
		t.Errorf("root value %v, want %v", root.Value(), want)
	}
	checkEmissions(t, *log,
		emission{"b", map[string]any{"x": 2, "y": 99}},
		emission{"b.y", 99})
}

func TestHandlersGetOwnCopy(t *testing.T) {
	root := New(map[string]any{"a": 1})
	var second any
	root.On(func(v any) {
		v.(map[string]any)["a"] = "mutated"
	})
	root.On(func(v any) {
		second = v
	})
	if err := root.SetRoot(map[string]any{"a": 2}); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": 2}
	if !value.Equal(second, want) {
		t.Errorf("second handler got %v, want %v", second, want)
	}
	if !value.Equal(root.Value(), want) {
		t.Errorf("root value %v, want %v", root.Value(), want)
	}
}

type countingObservable struct {
	*observe.Emitter
	emits *int
}

func (c countingObservable) Emit(event string, v any) {
	*c.emits++
	c.Emitter.Emit(event, v)
}

func TestWithObservable(t *testing.T) {
	emits := 0
	root := New(map[string]any{"a": 1}, WithObservable(func() observe.Observable {
		return countingObservable{Emitter: observe.NewEmitter(), emits: &emits}
	}))
	mustChild(t, root, "a")
	mustChild(t, root, "b")
	if err := root.SetRoot(map[string]any{"a": 2}); err != nil {
		t.Fatal(err)
	}
	if emits != 2 {
		t.Errorf("got %d emits, want 2", emits)
	}
}

func TestUnsubscribeAll(t *testing.T) {
	root := New(0)
	r := observe.NewRecorder()
	root.On(r.Handler())
	root.Subscribe("custom", r.Handler())
	root.UnsubscribeAll(ChangeEvent)
	root.Observable().Emit("custom", "x")
	if err := root.SetRoot(1); err != nil {
		t.Fatal(err)
	}
	if got := r.Values(); len(got) != 1 || got[0] != "x" {
		t.Errorf("got %v, want only the custom event", got)
	}
}
