// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionSearch      Action = "search"
	ActionGenre       Action = "genre"
	ActionPopular     Action = "popular"
	ActionHelp        Action = "help"

	// Playback actions
	ActionPlayPause           Action = "play_pause"
	ActionStop                Action = "stop"
	ActionNextTrack           Action = "next_track"
	ActionPrevTrack           Action = "prev_track"
	ActionSeekForward         Action = "seek_forward"
	ActionSeekBack            Action = "seek_back"
	ActionVolumeUp            Action = "volume_up"
	ActionVolumeDown          Action = "volume_down"
	ActionToggleMute          Action = "toggle_mute"
	ActionCycleRepeat         Action = "cycle_repeat"
	ActionToggleShuffle       Action = "toggle_shuffle"
	ActionTogglePlayerDisplay Action = "toggle_player_display"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Selection/activation actions
	ActionSelect     Action = "select"      // enter - play now / jump to
	ActionAdd        Action = "add"         // a - add to queue
	ActionReplaceAll Action = "replace_all" // r - replace queue with results

	// Queue-specific actions
	ActionDelete Action = "delete" // d/delete - remove from queue
	ActionUndo   Action = "undo"   // ctrl+z
	ActionRedo   Action = "redo"   // ctrl+y
)

// Contexts group bindings for help output and scoped resolution.
const (
	ContextGlobal   = "global"
	ContextPlayback = "playback"
	ContextResults  = "results"
	ContextQueue    = "queue"
)
