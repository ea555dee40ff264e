package generator

// Config is supplied by the binary.
type Config struct {
	Use     string
	Short   string
	Long    string
	Version string

	DefaultDir    string // used when neither --dir nor the project file sets one
	DefaultTarget string
	ConfigFile    string // project file looked up when --config is not given
}

func (c *Config) defaults() {
	if c.DefaultDir == "" {
		c.DefaultDir = "src/models"
	}
	if c.DefaultTarget == "" {
		c.DefaultTarget = "rust"
	}
	if c.ConfigFile == "" {
		c.ConfigFile = ".mime.yaml"
	}
}
