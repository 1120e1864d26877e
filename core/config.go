package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "Teacher Notebook")
	Conf.SetDefault("defaultLocale", "es")
	Conf.SetDefault("httpTimeout", 30*time.Second)
	Conf.SetDefault("statePath", defaultStatePath())

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case strings.ToUpper("TEST"):
		Conf.SetDefault("testMode", true)
	}
	Conf.SetEnvPrefix(env)

	// the production backend serves on a different port than the preview one
	if env == strings.ToUpper("PROD") {
		Conf.SetDefault("apiBaseURL", "https://codefm.synology.me:4443")
	} else {
		Conf.SetDefault("apiBaseURL", "https://codefm.synology.me:5553")
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

// defaultStatePath returns the directory holding durable client state
// (the locale preference). Falls back to the working directory when the
// OS user config dir cannot be determined.
func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".teacher-notebook"
	}
	return filepath.Join(dir, "teacher-notebook")
}
