package extractor

// Entry is one classified raw listing row. The set of variants is closed: a service classifies
// each row once into one of them and the collector never looks at the raw row again.
type Entry interface {
	entry()
}

type StreamEntry struct{ StreamItemExtractor }

type ChannelEntry struct{ ChannelItemExtractor }

type PlaylistEntry struct{ PlaylistItemExtractor }

type CommentEntry struct{ CommentItemExtractor }

func (StreamEntry) entry()   {}
func (ChannelEntry) entry()  {}
func (PlaylistEntry) entry() {}
func (CommentEntry) entry()  {}
