package commands

import (
    "errors"
    "testing"

    tea "github.com/charmbracelet/bubbletea"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestDispatchRunsRegisteredHandler(t *testing.T) {
    r := NewRegistry()
    var got []string
    r.Register(Find, func(args string) tea.Cmd {
        got = append(got, args)
        return nil
    })

    _, err := r.Dispatch(Find, "saved")
    require.NoError(t, err)
    assert.Equal(t, []string{"saved"}, got)

    _, err = r.Dispatch(Run, "")
    assert.True(t, errors.Is(err, ErrUnknownCommand))
}

func TestResolvePaletteInput(t *testing.T) {
    r := NewRegistry()
    r.Register(Find, func(string) tea.Cmd { return nil })
    r.Register(Run, func(string) tea.Cmd { return nil })

    n, args, err := r.Resolve("  FIND  auto saved ")
    require.NoError(t, err)
    assert.Equal(t, Find, n)
    assert.Equal(t, "auto saved", args)

    n, args, err = r.Resolve("run")
    require.NoError(t, err)
    assert.Equal(t, Run, n)
    assert.Empty(t, args)

    _, _, err = r.Resolve("compile")
    assert.ErrorIs(t, err, ErrUnknownCommand)
    _, _, err = r.Resolve("   ")
    assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestComplete(t *testing.T) {
    r := NewRegistry()
    for _, n := range []Name{ViewFlow, ViewConsole, Visualize, Run} {
        r.Register(n, func(string) tea.Cmd { return nil })
    }
    assert.Equal(t, []Name{ViewConsole, ViewFlow}, r.Complete("view-"))
    assert.Equal(t, []Name{Visualize}, r.Complete("vis"))
}

func TestLookupShortcuts(t *testing.T) {
    km := DefaultKeyMap()
    cases := []struct {
        msg  tea.KeyMsg
        want Name
    }{
        {tea.KeyMsg{Type: tea.KeyCtrlR}, Run},
        {tea.KeyMsg{Type: tea.KeyCtrlS}, Save},
        {tea.KeyMsg{Type: tea.KeyCtrlL}, Console},
        {tea.KeyMsg{Type: tea.KeyF1}, Help},
        {tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("="), Alt: true}, ZoomIn},
        {tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2"), Alt: true}, ViewConsole},
    }
    for _, c := range cases {
        got, ok := km.Lookup(c.msg)
        require.True(t, ok, c.msg.String())
        assert.Equal(t, c.want, got)
    }

    _, ok := km.Lookup(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
    assert.False(t, ok, "plain letters belong to the editor")
}

func TestEveryToolbarButtonHasAShortcut(t *testing.T) {
    km := DefaultKeyMap()
    for _, n := range Toolbar {
        _, hasKey := km.Binding(n)
        assert.True(t, hasKey, "%s has no shortcut", n)
        assert.NotEmpty(t, Descriptions[n], "%s has no description", n)
    }
}

func TestGlobalCommands(t *testing.T) {
    assert.True(t, Global(Console))
    assert.True(t, Global(Quit))
    assert.False(t, Global(Run))
}
