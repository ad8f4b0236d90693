package config

import (
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/yaml.v3"
)

const envMongoURI = "MONGO_URI"

func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		panic(err)
	}

	if err := Load(content); err != nil {
		panic(err)
	}

	hlog.Debugf("config debug: %+v", globalConfig)
}

// Load replaces the global config with the yaml in content and applies env overrides.
func Load(content []byte) error {
	var conf ServiceConf
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return err
	}
	if uri := os.Getenv(envMongoURI); uri != "" {
		conf.Mongo.URI = uri
	}
	globalConfig = conf
	return nil
}

func GetServerConf() ServerConf {
	return globalConfig.Server
}

func GetMongoConf() MongoConf {
	return globalConfig.Mongo
}

func GetRedisConf() RedisConf {
	return globalConfig.Redis
}

func GetHasherConf() HasherConf {
	return globalConfig.Hasher
}

func GetCORSConf() CORSConf {
	return globalConfig.CORS
}

func GetLoggerConf() LoggerConf {
	return globalConfig.Logger
}

var globalConfig ServiceConf

type ServiceConf struct {
	Server ServerConf `yaml:"server"`
	Mongo  MongoConf  `yaml:"mongo"`
	Redis  RedisConf  `yaml:"redis"`
	Hasher HasherConf `yaml:"hasher"`
	CORS   CORSConf   `yaml:"cors"`
	Logger LoggerConf `yaml:"logger"`
}

type ServerConf struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`
	Swagger   bool   `yaml:"swagger"`
}

type MongoConf struct {
	URI         string `yaml:"uri"`
	Database    string `yaml:"database"`
	Collection  string `yaml:"collection"`
	UniqueEmail bool   `yaml:"unique_email"`
}

type RedisConf struct {
	Enable         bool   `yaml:"enable"`
	IP             string `yaml:"ip"`
	Port           int    `yaml:"port"`
	Password       string `yaml:"password"`
	DB             int    `yaml:"db"`
	UserTTLSeconds int    `yaml:"user_ttl_seconds"`
}

type HasherConf struct {
	Cost int `yaml:"cost"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}
