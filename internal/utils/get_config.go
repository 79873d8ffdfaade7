package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort string `yaml:"APP_PORT"`

	// Local storage
	DBPath   string `yaml:"DB_PATH"`
	ImageDir string `yaml:"IMAGE_DIR"`

	// AI model server hosting the detection and dish-proposal endpoints
	AIServerURL string `yaml:"AI_SERVER_URL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig resolves a key from config.yaml, falling back to the
// environment so a .env or container environment can override an absent
// file.
func GetConfig(key string) string {
	value := ""
	switch key {
	case "APP_PORT":
		value = config.AppPort
	case "DB_PATH":
		value = config.DBPath
	case "IMAGE_DIR":
		value = config.ImageDir
	case "AI_SERVER_URL":
		value = config.AIServerURL
	}

	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
