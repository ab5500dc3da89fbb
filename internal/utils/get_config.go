package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Listing configuration
	PageSize int `yaml:"PAGE_SIZE"`

	// Image attachment configuration
	MaxImageBytes int64 `yaml:"MAX_IMAGE_BYTES"`

	// Demo dataset loaded into the in-memory store at startup
	SeedPath string `yaml:"SEED_PATH"`
}

const (
	DefaultPageSize      = 5
	DefaultMaxImageBytes = 5 << 20
)

var config = Config{
	PageSize:      DefaultPageSize,
	MaxImageBytes: DefaultMaxImageBytes,
}

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

	if config.PageSize <= 0 {
		config.PageSize = DefaultPageSize
	}
	if config.MaxImageBytes <= 0 {
		config.MaxImageBytes = DefaultMaxImageBytes
	}
}

func GetConfig(key string) string {
	switch key {
	case "PAGE_SIZE":
		return strconv.Itoa(config.PageSize)
	case "MAX_IMAGE_BYTES":
		return strconv.FormatInt(config.MaxImageBytes, 10)
	case "SEED_PATH":
		return config.SeedPath
	default:
		return ""
	}
}

func PageSize() int {
	return config.PageSize
}

func MaxImageBytes() int64 {
	return config.MaxImageBytes
}

func SeedPath() string {
	return config.SeedPath
}
