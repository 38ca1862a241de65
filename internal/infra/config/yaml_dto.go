package config

type YAMLFile struct {
	Livebot YAMLConfig `yaml:"livebot"`
}

type YAMLConfig struct {
	Python       string            `yaml:"python"`
	Interpreters []YAMLInterpreter `yaml:"interpreters"`

	Manifest   string `yaml:"manifest"`
	EntryPoint string `yaml:"entrypoint"`
	DotEnv     string `yaml:"dotenv"`
	LogsDir    string `yaml:"logs_dir"`

	Records YAMLRecords `yaml:"records"`
}

type YAMLInterpreter struct {
	Command string `yaml:"command"`
	Env     string `yaml:"env"`
	Path    string `yaml:"path"`
	File    string `yaml:"file"`
}

type YAMLRecords struct {
	Enabled *bool  `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}
