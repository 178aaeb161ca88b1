package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cascade/pkg/domain"
)

func TestParseScript(t *testing.T) {
	script := `
# open the middle
reveal 4 4
MARK 0 0
r 1 2
up
j
Left
right
difficulty Expert
new
quit
`
	actions, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, []domain.Action{
		domain.Reveal(4, 4),
		domain.ToggleMark(0, 0),
		domain.Reveal(1, 2),
		domain.CursorUp(),
		domain.CursorDown(),
		domain.CursorLeft(),
		domain.CursorRight(),
		domain.SetDifficulty(domain.Expert),
		domain.NewGame(),
		domain.Quit(),
	}, actions)
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unknown command", "explode"},
		{"missing coordinate", "reveal 1"},
		{"bad number", "mark x 2"},
		{"extra argument", "up 3"},
		{"unknown difficulty", "difficulty nightmare"},
		{"custom difficulty", "difficulty custom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader("up\n\n" + tt.line + "\n"))
			require.ErrorIs(t, err, ErrScript)

			var scriptErr *ScriptError
			require.ErrorAs(t, err, &scriptErr)
			assert.Equal(t, 3, scriptErr.Line)
			assert.Equal(t, tt.line, scriptErr.Text)
		})
	}
}

func TestParseScript_UnknownDifficultyWrapsDomainError(t *testing.T) {
	_, err := ParseScript(strings.NewReader("difficulty nightmare"))
	assert.ErrorIs(t, err, domain.ErrUnknownDifficulty)
}
