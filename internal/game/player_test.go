package game

import "testing"

func TestPlayerIsHealthy(t *testing.T) {
	p := &Player{}
	if !p.IsHealthy() {
		t.Fatal("fresh player should be healthy")
	}
	p.ActionState[1] = true
	if p.IsHealthy() {
		t.Fatal("player with a broken tool should not be healthy")
	}
}

func TestPlayCardInvalidIndex(t *testing.T) {
	p := &Player{HandCards: []Card{NewCard(4)}}
	if _, err := p.PlayCard(5); err != ErrInvalidHandIndex {
		t.Errorf("expected ErrInvalidHandIndex, got %v", err)
	}
	if _, err := p.PlayCard(-1); err != ErrInvalidHandIndex {
		t.Errorf("expected ErrInvalidHandIndex, got %v", err)
	}
}

func TestPlayCardRemovesFromHand(t *testing.T) {
	p := &Player{HandCards: []Card{NewCard(4), NewCard(5), NewCard(6)}}
	card, err := p.PlayCard(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.CardNo != 5 {
		t.Errorf("expected card_no 5, got %d", card.CardNo)
	}
	if len(p.HandCards) != 2 {
		t.Fatalf("expected 2 cards remaining, got %d", len(p.HandCards))
	}
	if p.HandCards[0].CardNo != 4 || p.HandCards[1].CardNo != 6 {
		t.Errorf("unexpected remaining hand: %v", p.HandCards)
	}
}

func TestReturnCardAndDraw(t *testing.T) {
	p := &Player{}
	p.Draw(NewCard(10))
	p.ReturnCard(NewCard(11))
	if len(p.HandCards) != 2 {
		t.Fatalf("expected 2 cards in hand, got %d", len(p.HandCards))
	}
}
