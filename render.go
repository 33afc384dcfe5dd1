package brandgen

// Renderer draws the brand artwork described by a Config.
// All of its drawing methods are pure: they return in-memory images and
// perform no I/O.
type Renderer struct {
	cfg  *Config
	font *Font
}

// NewRenderer validates the config and loads the wordmark font.
func NewRenderer(cfg *Config) (*Renderer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	font, err := LoadFont(cfg.FontSource)
	if err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg, font: font}, nil
}
