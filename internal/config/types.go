package config

// ProviderType identifies an LLM provider used for question generation.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
)

// Config is the top-level interviewhelper configuration, corresponding to
// .interviewhelper.yml.
type Config struct {
	SiteName          string       `yaml:"site_name" koanf:"site_name"`
	ContentDir        string       `yaml:"content_dir" koanf:"content_dir"`
	OutputDir         string       `yaml:"output_dir" koanf:"output_dir"`
	DataDir           string       `yaml:"data_dir" koanf:"data_dir"`
	QuestionsDir      string       `yaml:"questions_dir" koanf:"questions_dir"`
	Port              int          `yaml:"port" koanf:"port"`
	JWTSecret         string       `yaml:"jwt_secret" koanf:"jwt_secret"`
	TokenTTLHours     int          `yaml:"token_ttl_hours" koanf:"token_ttl_hours"`
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	QuestionsPerTopic int          `yaml:"questions_per_topic" koanf:"questions_per_topic"`
	MaxRPM            int          `yaml:"max_rpm" koanf:"max_rpm"`
	Include           []string     `yaml:"include" koanf:"include"`
	Exclude           []string     `yaml:"exclude" koanf:"exclude"`
	CORS              CORSConfig   `yaml:"cors" koanf:"cors"`
}

// CORSConfig holds cross-origin settings for the API server.
type CORSConfig struct {
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}
