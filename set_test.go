package rotkin

import (
	"testing"
)

func TestFloatSet(t *testing.T) {
	a := NewFloatSet()
	if len(a.Elements()) != 0 {
		t.Errorf("Got a = %v", a)
	}
	a.Add(17)
	a.Add(-2)
	a.Add(17)
	elem := a.Elements()
	if len(elem) != 2 || elem[0] != -2 || elem[1] != 17 {
		t.Errorf("Got elem = %v", elem)
	}
	if !a.Contains(-2) || a.Contains(3) {
		t.Errorf("Bad membership in %v", a)
	}
	if got := a.String(); got != "[-2 17]" {
		t.Errorf("Got %q", got)
	}
}

func TestStringSet(t *testing.T) {
	a := NewStringSetFrom([]string{"cat", "dog", "fish", "dog"})
	if len(a) != 3 {
		t.Errorf("Got a = %v", a)
	}
	b := NewStringSetFrom([]string{"dog", "bird"})
	a.Remove(b)
	if got := a.Elements(); len(got) != 2 || got[0] != "cat" || got[1] != "fish" {
		t.Errorf("Got %v", got)
	}
	if a.Contains("dog") {
		t.Errorf("dog not removed")
	}
}
