package fourcc

// Well-known codes from common container formats. This is a lookup table for
// consumers comparing chunk tags against registered values; no container
// parsing happens in this package.
var (
	// RIFF family (WAV, AVI, WebP).
	RIFF = Must("RIFF")
	RIFX = Must("RIFX")
	LIST = Must("LIST")
	JUNK = Must("JUNK")
	WAVE = Must("WAVE")
	Fmt  = Must("fmt ")
	Data = Must("data")
	AVI  = Must("AVI ")
	WEBP = Must("WEBP")

	// IFF (EA 85) containers.
	FORM = Must("FORM")
	AIFF = Must("AIFF")
	COMM = Must("COMM")
	SSND = Must("SSND")

	// ISO base media (MP4, MOV) atoms.
	Ftyp = Must("ftyp")
	Moov = Must("moov")
	Mdat = Must("mdat")
	Free = Must("free")
)

var descriptions = map[FourCC]string{
	RIFF: "RIFF container, little-endian",
	RIFX: "RIFF container, big-endian",
	LIST: "RIFF list chunk",
	JUNK: "RIFF padding chunk",
	WAVE: "waveform audio form",
	Fmt:  "wave format chunk",
	Data: "wave data chunk",
	AVI:  "audio video interleave form",
	WEBP: "WebP image form",
	FORM: "IFF form container",
	AIFF: "audio interchange form",
	COMM: "AIFF common chunk",
	SSND: "AIFF sound data chunk",
	Ftyp: "ISO-BMFF file type atom",
	Moov: "ISO-BMFF movie metadata atom",
	Mdat: "ISO-BMFF media data atom",
	Free: "ISO-BMFF free space atom",
}

// Describe returns a human-readable description for codes in the registry.
// The second result reports whether the code is registered.
func Describe(f FourCC) (string, bool) {
	d, ok := descriptions[f]
	return d, ok
}
