package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "results", "queue"
}

// All contains all key bindings for help generation and resolution.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", ContextGlobal},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", ContextGlobal},
	{ActionSearch, []string{"/"}, "Search tracks", ContextGlobal},
	{ActionGenre, []string{"g"}, "Browse genre", ContextGlobal},
	{ActionPopular, []string{"P"}, "Popular tracks", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
	{ActionStop, []string{"s"}, "Stop", ContextPlayback},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", ContextPlayback},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous track", ContextPlayback},
	{ActionSeekBack, []string{"left", "h"}, "Seek -5s", ContextPlayback},
	{ActionSeekForward, []string{"right", "l"}, "Seek +5s", ContextPlayback},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextPlayback},
	{ActionVolumeDown, []string{"-"}, "Volume down", ContextPlayback},
	{ActionToggleMute, []string{"m"}, "Mute/unmute", ContextPlayback},
	{ActionCycleRepeat, []string{"R"}, "Cycle repeat mode", ContextPlayback},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", ContextPlayback},
	{ActionTogglePlayerDisplay, []string{"v"}, "Toggle player display", ContextPlayback},

	// Search results
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextResults},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextResults},
	{ActionJumpStart, []string{"home"}, "First item", ContextResults},
	{ActionJumpEnd, []string{"end", "G"}, "Last item", ContextResults},
	{ActionSelect, []string{"enter"}, "Play now", ContextResults},
	{ActionAdd, []string{"a"}, "Add to queue", ContextResults},
	{ActionReplaceAll, []string{"r"}, "Replace queue with results", ContextResults},

	// Queue panel
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextQueue},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextQueue},
	{ActionJumpStart, []string{"home"}, "First item", ContextQueue},
	{ActionJumpEnd, []string{"end", "G"}, "Last item", ContextQueue},
	{ActionSelect, []string{"enter"}, "Play track", ContextQueue},
	{ActionDelete, []string{"d", "delete"}, "Remove track", ContextQueue},
	{ActionUndo, []string{"ctrl+z"}, "Undo queue change", ContextQueue},
	{ActionRedo, []string{"ctrl+y"}, "Redo queue change", ContextQueue},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
