package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Presence PresenceConfig
	Company  CompanyInfo
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret string
	Expiry string
}

type PresenceConfig struct {
	// OfflineAfter marks a camera offline once it has been silent for this
	// long. Zero disables the sweep; cameras then stay online until restart.
	OfflineAfter  time.Duration
	SweepInterval time.Duration
}

type CompanyInfo struct {
	Name    string `json:"name"`
	Slogan  string `json:"slogan"`
	Phone1  string `json:"phone1"`
	Phone2  string `json:"phone2"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// SupportedLocales is the allow-list for /set_language.
var SupportedLocales = []string{"en", "de", "fr", "tr", "ar", "ur"}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "cameras.db"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "telelenker_smart_security_2024"),
			Expiry: getEnv("JWT_EXPIRY", "24h"),
		},
		Presence: PresenceConfig{
			OfflineAfter:  getEnvDuration("OFFLINE_AFTER", 0),
			SweepInterval: getEnvDuration("SWEEP_INTERVAL", 10*time.Second),
		},
		Company: CompanyInfo{
			Name:    getEnv("COMPANY_NAME", "Telelenker"),
			Slogan:  getEnv("COMPANY_SLOGAN", "Smart Security System"),
			Phone1:  getEnv("COMPANY_PHONE1", "+92 315 2820296"),
			Phone2:  getEnv("COMPANY_PHONE2", "+92 316 2260608"),
			Email:   getEnv("COMPANY_EMAIL", "telelenker@gmail.com"),
			Website: getEnv("COMPANY_WEBSITE", "https://telelenker01.github.io/Portfolio-/"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// Plain numbers are read as seconds
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// IsSupportedLocale reports whether lang is on the locale allow-list.
func IsSupportedLocale(lang string) bool {
	for _, l := range SupportedLocales {
		if l == lang {
			return true
		}
	}
	return false
}
