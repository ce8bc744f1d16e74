package spec

type Config struct {
	Version   int              `yaml:"version"`
	Target    TargetConfig     `yaml:"target"`
	Documents []DocumentConfig `yaml:"documents"`
	Corpus    CorpusConfig     `yaml:"corpus"`
	Judge     JudgeConfig      `yaml:"judge"`
	Run       RunConfig        `yaml:"run"`
}

type TargetConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type DocumentConfig struct {
	Path        string `yaml:"path"`
	Description string `yaml:"description"`
}

type CorpusConfig struct {
	Path string `yaml:"path"`
}

type JudgeConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Model    string   `yaml:"model"`
	BaseURL  string   `yaml:"base_url"`
	Criteria []string `yaml:"criteria"`
}

type RunConfig struct {
	Workers   int    `yaml:"workers"`
	OutputDir string `yaml:"output_dir"`
	Database  string `yaml:"database"`
}
