package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	parserName string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
// Unknown names fall back to the default.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	direction Direction
	language  string
}

func defaultFaceConfig() faceConfig {
	return faceConfig{
		direction: DirectionLTR,
		language:  "en",
	}
}

// WithDirection sets the base paragraph direction used when shaping.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// WithLanguage sets the BCP 47 language tag passed to the shaper.
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		if lang != "" {
			c.language = lang
		}
	}
}
