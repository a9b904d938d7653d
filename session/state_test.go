package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from  State
		event Event
		want  State
	}{
		{StateWelcome, EventAdvance, StateSelectLanguages},
		{StateWelcome, EventBack, StateExit},
		{StateSelectLanguages, EventAdvance, StateTranslate},
		{StateSelectLanguages, EventBack, StateExit},
		{StateTranslate, EventAdvance, StateTranslate},
		{StateTranslate, EventBack, StateSelectLanguages},
		{StateTranslate, EventQuit, StateExit},
		{StateSelectLanguages, EventQuit, StateExit},
		{StateExit, EventAdvance, StateExit},
		{StateExit, EventBack, StateExit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Transition(tt.from, tt.event), "%s on %s", tt.from, tt.event)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "translate", StateTranslate.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, "back", EventBack.String())
}
