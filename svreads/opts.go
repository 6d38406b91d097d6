package svreads

// Opts configures a Tracker.
type Opts struct {
	// KmerSize is the number of aligned bases added to a clipped fragment to
	// form its buffered fragment. It is also the minimum length of a
	// quality-trimmed read written to the reads sink.
	KmerSize int
	// ClipTrimQual is the minimum base quality that bounds the good-quality
	// interval compared against a read's aligned interval.
	ClipTrimQual int
	// EmitTrimQual is the minimum base quality used to trim reads before they
	// are written to the reads sink.
	EmitTrimQual int
	// DiscordantInsertSize is the absolute insert size at or above which a
	// same-reference pair counts as discordant.
	DiscordantInsertSize int
	// OverlapShrinkLimit caps the number of bases removed from a clipped
	// fragment while testing it against the mate sequence.
	OverlapShrinkLimit int
}

// DefaultOpts holds the default values for Opts.
var DefaultOpts = Opts{
	KmerSize:             15,
	ClipTrimQual:         3,
	EmitTrimQual:         5,
	DiscordantInsertSize: 500,
	OverlapShrinkLimit:   5,
}
