package config

import "github.com/spf13/viper"

type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	CORSOrigin   string
	InquiryRate  float64
	InquiryBurst int
	GinMode      string
}

// Load reads configuration from environment variables with sensible
// defaults for local development. A .env file, if present, is loaded by
// main before this runs.
func Load() *Config {
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "wellness")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	viper.SetDefault("INQUIRY_RATE", 0.2)
	viper.SetDefault("INQUIRY_BURST", 5)
	viper.SetDefault("GIN_MODE", "debug")
	viper.AutomaticEnv()

	return &Config{
		Port:         viper.GetString("PORT"),
		MongoURI:     viper.GetString("MONGO_URI"),
		MongoDB:      viper.GetString("MONGO_DB"),
		CORSOrigin:   viper.GetString("CORS_ORIGIN"),
		InquiryRate:  viper.GetFloat64("INQUIRY_RATE"),
		InquiryBurst: viper.GetInt("INQUIRY_BURST"),
		GinMode:      viper.GetString("GIN_MODE"),
	}
}
