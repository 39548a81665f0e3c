package youtube

// Wire types for the player response embedded in a watch page and for the
// two caption payload formats a track URL can serve. Higher-level logic
// lives in player.go and timedtext.go.

// playerResponse is the subset of ytInitialPlayerResponse this package
// reads: playability status and the caption track list.
type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

// captionTrack is one entry of the player response track list.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

// --- attribute-style payload: timedtext XML ---

// timedText binds the legacy caption document: one <text> element per
// segment, timing carried in fractional-second attributes.
type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

// --- mapping-style payload: JSON3 events ---

// json3Doc binds the json3 caption document: millisecond event records,
// each holding utf8 text runs.
type json3Doc struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	TStartMs    int64      `json:"tStartMs"`
	DDurationMs int64      `json:"dDurationMs"`
	Segs        []json3Seg `json:"segs"`
}

type json3Seg struct {
	UTF8 string `json:"utf8"`
}
