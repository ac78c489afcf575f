package api

import (
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/z-labo/master-defence-faculty/logging"
)

// Config is read once at startup and passed by reference into the server;
// nothing reads viper after this point.
type Config struct {
	StorageConfig
	ServerConfig
}

type StorageConfig struct {
	Bucket     string
	BaseFolder string
	Region     string
	// Endpoint overrides the S3 endpoint for local setups (minio,
	// localstack). Empty in production.
	Endpoint string
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			Bucket:     viper.GetString("storage.bucket"),
			BaseFolder: getStringOrDefault("storage.baseFolder", "/Scoring"),
			Region:     viper.GetString("storage.region"),
			Endpoint:   viper.GetString("storage.endpoint"),
		},
		ServerConfig: ServerConfig{
			Port:           getIntOrDefault("server.port", 5000),
			AllowedOrigins: getStringSliceOrDefault("server.allowedOrigins", []string{"https://z-labo.github.io"}),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringSliceOrDefault(name string, def []string) []string {
	if viper.IsSet(name) {
		v := splitCommaList(viper.GetStringSlice(name))
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

// splitCommaList normalizes env overrides like
// "https://a.example,https://b.example": viper only splits env values on
// whitespace, so each element is split on commas and trimmed. Yaml lists
// pass through unchanged.
func splitCommaList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
