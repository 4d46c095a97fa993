package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameIDValidate(t *testing.T) {
	tests := []struct {
		name string
		id   GameID
		ok   bool
	}{
		{"valid short", "A1", true},
		{"valid typical", "ABCD1234", true},
		{"valid single char", "X", true},
		{"valid max length", GameID(strings.Repeat("A", MaxGameIDLength)), true},
		{"empty", "", false},
		{"too long", GameID(strings.Repeat("A", MaxGameIDLength+1)), false},
		{"lowercase", "abcd1234", false},
		{"space", "ABCD 123", false},
		{"punctuation", "ABCD-123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidGameID)
			}
		})
	}
}

func TestStatusOrdering(t *testing.T) {
	order := []GameStatus{
		StatusWaitingForParticipants,
		StatusWaitingForStory,
		StatusWaitingForDrawings,
		StatusSelectingWinner,
		StatusWaitForMinting,
		StatusCompleted,
	}

	for i := 0; i < len(order)-1; i++ {
		assert.True(t, order[i].Before(order[i+1]), "%s should precede %s", order[i], order[i+1])
		assert.False(t, order[i+1].Before(order[i]), "%s should not precede %s", order[i+1], order[i])
	}
}

func TestGameMembership(t *testing.T) {
	g := &Game{
		Host:         "host",
		Participants: []Identity{"alice", "bob"},
	}

	assert.True(t, g.HasParticipant("alice"))
	assert.True(t, g.HasParticipant("bob"))
	assert.False(t, g.HasParticipant("host"))
	assert.False(t, g.HasParticipant("carol"))
	assert.Equal(t, []Identity{"host", "alice", "bob"}, g.Everyone())
}

func TestGameDrawings(t *testing.T) {
	g := &Game{
		Participants: []Identity{"alice", "bob"},
		Drawings:     []Drawing{{Participant: "alice", Ref: "drawing_1"}},
	}

	assert.True(t, g.HasDrawingFrom("alice"))
	assert.False(t, g.HasDrawingFrom("bob"))
	assert.False(t, g.AllDrawingsIn())

	g.Drawings = append(g.Drawings, Drawing{Participant: "bob", Ref: "drawing_2"})
	assert.True(t, g.AllDrawingsIn())
}

func TestGameWinner(t *testing.T) {
	g := &Game{
		Drawings: []Drawing{
			{Participant: "alice", Ref: "drawing_1"},
			{Participant: "bob", Ref: "drawing_2"},
		},
	}

	assert.Nil(t, g.Winner())

	idx := uint32(1)
	g.WinnerIndex = &idx
	winner := g.Winner()
	assert.NotNil(t, winner)
	assert.Equal(t, Identity("bob"), winner.Participant)
	assert.Equal(t, "drawing_2", winner.Ref)
}
