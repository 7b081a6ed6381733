package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	TopN     int            `mapstructure:"topn" validate:"min=1,max=1000"`
	Language string         `mapstructure:"language" validate:"required,language"`
	Word2Vec Word2VecConfig `mapstructure:"word2vec"`
	WordNet  WordNetConfig  `mapstructure:"wordnet"`
	Server   ServerConfig   `mapstructure:"server"`
}

type Word2VecConfig struct {
	Enabled               bool   `mapstructure:"enabled"`
	PythonPath            string `mapstructure:"python_path" validate:"required_if=Enabled true"`
	APIScript             string `mapstructure:"api_script" validate:"required_if=Enabled true"`
	PretrainedModel       string `mapstructure:"pretrained_word2vec_model" validate:"required_if=Enabled true"`
	Host                  string `mapstructure:"host" validate:"required"`
	Port                  int    `mapstructure:"port" validate:"min=1,max=65535"`
	StartupTimeoutSeconds int    `mapstructure:"startup_timeout_seconds" validate:"min=0"`
	// RequestTimeoutSeconds of 0 leaves the request timeout to the network stack
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"min=0"`
}

// Address returns host:port of the word2vec-api server.
func (c Word2VecConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Word2VecConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

type WordNetConfig struct {
	Enabled        bool           `mapstructure:"enabled"`
	CorpusPath     string         `mapstructure:"corpus_path" validate:"omitempty,file"`
	CacheDirectory string         `mapstructure:"cache_directory"`
	Database       DatabaseConfig `mapstructure:"database"`
}

// DatabaseConfig points at a WordNet SQL database. It is used only when Database is set.
type DatabaseConfig struct {
	Host     string `mapstructure:"host" validate:"required_with=Database"`
	Port     int    `mapstructure:"port" validate:"min=0,max=65535"`
	Database string `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

func (c DatabaseConfig) Enabled() bool {
	return c.Database != ""
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fancyword")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("topn", 10)
	v.SetDefault("language", "eng")
	v.SetDefault("word2vec.enabled", false)
	v.SetDefault("word2vec.python_path", "python")
	v.SetDefault("word2vec.api_script", filepath.Join("dependences", "word2vec-api.py"))
	v.SetDefault("word2vec.pretrained_word2vec_model", "")
	v.SetDefault("word2vec.host", "127.0.0.1")
	v.SetDefault("word2vec.port", 5000)
	v.SetDefault("word2vec.startup_timeout_seconds", 0)
	v.SetDefault("word2vec.request_timeout_seconds", 0)
	v.SetDefault("wordnet.enabled", true)
	// An empty corpus path selects the embedded corpus
	v.SetDefault("wordnet.corpus_path", "")
	v.SetDefault("wordnet.cache_directory", "")
	v.SetDefault("wordnet.database.port", 3306)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8765)

	// The model path differs per machine, so it can also come from the environment
	if err := v.BindEnv("word2vec.pretrained_word2vec_model", "FANCYWORD_WORD2VEC_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FANCYWORD_WORD2VEC_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("wordnet.database.password", "FANCYWORD_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind FANCYWORD_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
