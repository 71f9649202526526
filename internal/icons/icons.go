package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Track      string
	Artist     string
	Search     string
	Genre      string
	Popular    string
	Play       string
	Pause      string
	Loading    string
	Shuffle    string
	RepeatAll  string
	RepeatOne  string
	Volume     string
	VolumeMute string
}

var (
	nerdIcons = Icons{
		Track:      "\uf001 ",    // nf-fa-music
		Artist:     "\uf007 ",    // nf-fa-user
		Search:     "\uf002 ",    // nf-fa-search
		Genre:      "\uf02c ",    // nf-fa-tags
		Popular:    "\uf06d ",    // nf-fa-fire
		Play:       "\uf04b",     // nf-fa-play
		Pause:      "\uf04c",     // nf-fa-pause
		Loading:    "\uf110",     // nf-fa-spinner
		Shuffle:    "\U000f049f", // nf-md-shuffle
		RepeatAll:  "\U000f0456", // nf-md-repeat
		RepeatOne:  "\U000f0458", // nf-md-repeat_once
		Volume:     "\U000f057e", // nf-md-volume_high
		VolumeMute: "\U000f075f", // nf-md-volume_mute
	}

	unicodeIcons = Icons{
		Track:      "🎵 ",
		Artist:     "👤 ",
		Search:     "🔍 ",
		Genre:      "🏷 ",
		Popular:    "🔥 ",
		Play:       "▶",
		Pause:      "⏸",
		Loading:    "⏳",
		Shuffle:    "🔀",
		RepeatAll:  "🔁",
		RepeatOne:  "🔂",
		Volume:     "🔊",
		VolumeMute: "🔇",
	}

	noneIcons = Icons{
		Track:      "",
		Artist:     "",
		Search:     "",
		Genre:      "",
		Popular:    "",
		Play:       ">",
		Pause:      "||",
		Loading:    "...",
		Shuffle:    "[S]",
		RepeatAll:  "[R]",
		RepeatOne:  "[1]",
		Volume:     "Vol",
		VolumeMute: "Mute",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatTrack formats a track name with the appropriate icon.
func FormatTrack(name string) string {
	return current.Track + name
}

// FormatArtist formats an artist name with the appropriate icon.
func FormatArtist(name string) string {
	return current.Artist + name
}

// FormatSearch prefixes a search query label.
func FormatSearch(query string) string {
	return current.Search + query
}

// FormatGenre prefixes a genre label.
func FormatGenre(genre string) string {
	return current.Genre + genre
}

// FormatPopular prefixes the popular tracks label.
func FormatPopular(label string) string {
	return current.Popular + label
}

// Play returns the playing indicator.
func Play() string {
	return current.Play
}

// Pause returns the paused indicator.
func Pause() string {
	return current.Pause
}

// Loading returns the loading indicator.
func Loading() string {
	return current.Loading
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// RepeatAll returns the repeat all icon.
func RepeatAll() string {
	return current.RepeatAll
}

// RepeatOne returns the repeat one icon.
func RepeatOne() string {
	return current.RepeatOne
}

// Volume returns the volume icon.
func Volume() string {
	return current.Volume
}

// VolumeMute returns the muted volume icon.
func VolumeMute() string {
	return current.VolumeMute
}
