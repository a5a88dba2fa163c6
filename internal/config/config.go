package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	AWSRegion   string
	BucketName  string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool
	ServerPort  int
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("PORT", 3000)
	viper.SetDefault("S3_USE_SSL", true)

	if !viper.IsSet("AWS_REGION") {
		return nil, fmt.Errorf("AWS_REGION is required")
	}
	if !viper.IsSet("S3_BUCKET_NAME") {
		return nil, fmt.Errorf("S3_BUCKET_NAME is required")
	}
	if !viper.IsSet("S3_ENDPOINT") {
		return nil, fmt.Errorf("S3_ENDPOINT is required")
	}
	if !viper.IsSet("S3_ACCESS_KEY") {
		return nil, fmt.Errorf("S3_ACCESS_KEY is required")
	}
	if !viper.IsSet("S3_SECRET_KEY") {
		return nil, fmt.Errorf("S3_SECRET_KEY is required")
	}

	return &Settings{
		AWSRegion:   viper.GetString("AWS_REGION"),
		BucketName:  viper.GetString("S3_BUCKET_NAME"),
		S3Endpoint:  viper.GetString("S3_ENDPOINT"),
		S3AccessKey: viper.GetString("S3_ACCESS_KEY"),
		S3SecretKey: viper.GetString("S3_SECRET_KEY"),
		S3UseSSL:    viper.GetBool("S3_USE_SSL"),
		ServerPort:  viper.GetInt("PORT"),
	}, nil
}
