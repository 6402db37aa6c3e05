package game

import "testing"

func TestCardKind(t *testing.T) {
	tests := []struct {
		name   string
		cardNo int
		want   CardKind
	}{
		{"empty", EmptyCardNo, KindEmpty},
		{"start", 0, KindRoad},
		{"straight", 38, KindRoad},
		{"last road", 43, KindRoad},
		{"first action", 44, KindAction},
		{"last action", 70, KindAction},
		{"hidden destination", 71, KindRoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCard(tt.cardNo)
			if got := c.Kind(); got != tt.want {
				t.Errorf("Kind(%d) = %v, want %v", tt.cardNo, got, tt.want)
			}
		})
	}
}

func TestRoadConnectionRotation(t *testing.T) {
	base := RoadConnection(38, 0)
	rotated := RoadConnection(38, 1)

	if base[sideTop] != rotated[sideDown] || base[sideDown] != rotated[sideTop] {
		t.Errorf("rotation did not swap top/down: base=%v rotated=%v", base, rotated)
	}
	if base[sideRight] != rotated[sideLeft] || base[sideLeft] != rotated[sideRight] {
		t.Errorf("rotation did not swap right/left: base=%v rotated=%v", base, rotated)
	}
	if base[0] != rotated[0] {
		t.Errorf("rotation changed middle connector: base=%d rotated=%d", base[0], rotated[0])
	}
}

func TestHiddenDestinationReveal(t *testing.T) {
	c := NewRoadCard(71, 0)
	if !c.IsHiddenDestination() {
		t.Fatal("expected card_no 71 to be a hidden destination")
	}
	revealed := c.Revealed()
	if revealed.IsHiddenDestination() {
		t.Fatal("revealed card should not still be hidden")
	}
	if revealed.CardNo != 1 {
		t.Errorf("expected revealed card_no 1, got %d", revealed.CardNo)
	}
}

func TestActionOf(t *testing.T) {
	tests := []struct {
		name      string
		cardNo    int
		wantKinds []ActionKind
		wantBreak bool
	}{
		{"break lamp", 44, []ActionKind{ActionMinerLamp}, true},
		{"repair lamp", 47, []ActionKind{ActionMinerLamp}, false},
		{"break cart", 49, []ActionKind{ActionMinecart}, true},
		{"break pick", 54, []ActionKind{ActionMinePick}, true},
		{"multi repair pick+cart", 59, []ActionKind{ActionMinePick, ActionMinecart}, false},
		{"rocks", 62, []ActionKind{ActionRocks}, false},
		{"map", 65, []ActionKind{ActionMap}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kinds, isBreak := ActionOf(tt.cardNo)
			if len(kinds) != len(tt.wantKinds) {
				t.Fatalf("ActionOf(%d) kinds = %v, want %v", tt.cardNo, kinds, tt.wantKinds)
			}
			for i := range kinds {
				if kinds[i] != tt.wantKinds[i] {
					t.Errorf("ActionOf(%d) kind[%d] = %v, want %v", tt.cardNo, i, kinds[i], tt.wantKinds[i])
				}
			}
			if isBreak != tt.wantBreak {
				t.Errorf("ActionOf(%d) isBreak = %v, want %v", tt.cardNo, isBreak, tt.wantBreak)
			}
		})
	}
}
