package game

import (
	"encoding/json"
	"math/rand"
	"reflect"
	"testing"
)

func TestRoundTripToDictFromDict(t *testing.T) {
	c := NewController([]string{"a", "b", "c"}, rand.New(rand.NewSource(5)))
	c.PlayerList[0].Point = 3
	c.PlayerList[1].ActionState[1] = true
	c.FoldDeck = append(c.FoldDeck, NewActionCard(62))

	dict := c.ToDict()
	restored := ControllerFromDict(dict)

	if restored.Round != c.Round || restored.NumPlayer != c.NumPlayer || restored.Turn != c.Turn {
		t.Fatalf("scalar fields mismatch: got round=%d num_player=%d turn=%d",
			restored.Round, restored.NumPlayer, restored.Turn)
	}
	if restored.GameState != c.GameState {
		t.Errorf("game_state mismatch: got %v want %v", restored.GameState, c.GameState)
	}
	if restored.GoldPos != c.GoldPos {
		t.Errorf("gold_pos mismatch: got %d want %d", restored.GoldPos, c.GoldPos)
	}
	if !reflect.DeepEqual(restored.Board.Tiles, c.Board.Tiles) {
		t.Errorf("board mismatch after round-trip")
	}
	for i := range c.PlayerList {
		if restored.PlayerList[i].ID != c.PlayerList[i].ID {
			t.Errorf("player %d id mismatch: got %s want %s", i, restored.PlayerList[i].ID, c.PlayerList[i].ID)
		}
		if restored.PlayerList[i].Point != c.PlayerList[i].Point {
			t.Errorf("player %d point mismatch", i)
		}
		if restored.PlayerList[i].ActionState != c.PlayerList[i].ActionState {
			t.Errorf("player %d action_state mismatch", i)
		}
		if len(restored.PlayerList[i].HandCards) != len(c.PlayerList[i].HandCards) {
			t.Errorf("player %d hand size mismatch", i)
		}
	}
	if len(restored.FoldDeck) != len(c.FoldDeck) {
		t.Errorf("fold_deck length mismatch: got %d want %d", len(restored.FoldDeck), len(c.FoldDeck))
	}
}

func TestControllerDictIsJSONSerializable(t *testing.T) {
	c := NewController([]string{"a", "b"}, rand.New(rand.NewSource(2)))
	dict := c.ToDict()

	data, err := json.Marshal(dict)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	var back ControllerDict
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if back.NumPlayer != dict.NumPlayer {
		t.Errorf("expected num_player %d, got %d", dict.NumPlayer, back.NumPlayer)
	}
	if len(back.Board) != len(dict.Board) {
		t.Errorf("expected board length %d, got %d", len(dict.Board), len(back.Board))
	}
}
