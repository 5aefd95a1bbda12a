package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	Port int `toml:"port"`
}

type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

type JWTConfig struct {
	Secret string `toml:"secret"` // For JWT signing
}

type PaymentConfig struct {
	Price float64 `toml:"price"` // Fixed access price, BRL
	// ApprovalRate is the probability a status check comes back approved.
	// The payment provider is simulated; this is all the "verification"
	// there is.
	ApprovalRate float64 `toml:"approval_rate"`
	CheckoutURL  string  `toml:"checkout_url"`
	SandboxURL   string  `toml:"sandbox_url"`
}

type DiscordConfig struct {
	APIBase string `toml:"api_base"`
}

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	JWT     JWTConfig     `toml:"jwt"`
	Payment PaymentConfig `toml:"payment"`
	Discord DiscordConfig `toml:"discord"`
}

func LoadConfig(filepath string) (*Config, error) {
	var config Config

	// Set default values
	config.Server.Port = 3000
	config.Storage.DataDir = "./data"
	config.Payment.Price = 29.90
	config.Payment.ApprovalRate = 0.7
	config.Payment.CheckoutURL = "https://www.mercadopago.com.br/checkout/v1/redirect"
	config.Payment.SandboxURL = "https://sandbox.mercadopago.com.br/checkout/v1/redirect"
	config.Discord.APIBase = "https://discord.com/api/v10"

	_, err := toml.DecodeFile(filepath, &config)
	if err != nil {
		return nil, err
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if config.Payment.ApprovalRate < 0 || config.Payment.ApprovalRate > 1 {
		return nil, fmt.Errorf("payment approval_rate must be between 0 and 1")
	}

	return &config, nil
}
