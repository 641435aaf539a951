package pts

import "testing"

func TestSetAddAllReturnsOnlyNewElements(t *testing.T) {
	var s Set[int]
	s.AddObject(1)
	s.AddObject(2)

	other := FromSlice(2, 3, 4)
	delta := s.AddAll(other)

	if len(delta) != 2 {
		t.Fatalf("expected 2 new elements, got %v", delta)
	}
	if s.Len() != 4 {
		t.Fatalf("expected set to contain 4 elements, got %d", s.Len())
	}
}

func TestSetPromotesPastInlineCap(t *testing.T) {
	var s Set[int]
	for i := 0; i < inlineCap+10; i++ {
		s.AddObject(i)
	}
	if s.Len() != inlineCap+10 {
		t.Fatalf("expected %d elements, got %d", inlineCap+10, s.Len())
	}
	for i := 0; i < inlineCap+10; i++ {
		if !s.Contains(i) {
			t.Errorf("expected set to contain %d", i)
		}
	}
}

func TestSetReAddIsNoop(t *testing.T) {
	s := FromSlice(1, 2, 3)
	delta := s.AddAll(FromSlice(1, 2, 3))
	if len(delta) != 0 {
		t.Fatalf("expected no new elements re-adding the same set, got %v", delta)
	}
}
