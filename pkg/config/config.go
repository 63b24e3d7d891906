package config

// NOTE: one metadata packet describes the whole sequence and is shared by
// every frame in a file
const (
	// xmp side channel
	XMPKeyword       = "XML:com.adobe.xmp"
	PlaceholderToken = "base64"
	MetaDataTagOpen  = "<daywall:MetaData>"
	MetaDataTagClose = "</daywall:MetaData>"

	// json field names
	KeyCrossFade      = "cross-fade"
	KeyTime           = "time"
	KeySolarElevation = "solar-elevation"
	KeySolarAzimuth   = "solar-azimuth"
	KeyIndex          = "index"

	// cross-fade literals
	ValueCrossFade   = "CrossFade"
	ValueNoCrossFade = "NoCrossFade"

	// Path
	DefaultOutput    = "wallpaper.png"
	FrameFilePattern = "frame_%04d.png"
)
