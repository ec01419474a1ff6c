package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"storefront/internal/config"
)

// fileConfig mirrors config.Config with string durations so the YAML file
// can carry values like "5m".
type fileConfig struct {
	Server struct {
		Port            int    `yaml:"port"`
		ReadTimeout     string `yaml:"readTimeout"`
		WriteTimeout    string `yaml:"writeTimeout"`
		IdleTimeout     string `yaml:"idleTimeout"`
		ShutdownTimeout string `yaml:"shutdownTimeout"`
	} `yaml:"server"`
	Database struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		Name            string `yaml:"name"`
		MaxOpenConns    int    `yaml:"maxOpenConns"`
		MaxIdleConns    int    `yaml:"maxIdleConns"`
		ConnMaxLifetime string `yaml:"connMaxLifetime"`
	} `yaml:"database"`
	Order struct {
		TxTimeout         string `yaml:"txTimeout"`
		NumberMaxAttempts int    `yaml:"numberMaxAttempts"`
	} `yaml:"order"`
	Mail struct {
		BaseURL     string `yaml:"baseUrl"`
		APIKey      string `yaml:"apiKey"`
		SenderName  string `yaml:"senderName"`
		SenderEmail string `yaml:"senderEmail"`
		AdminEmail  string `yaml:"adminEmail"`
		Timeout     string `yaml:"timeout"`
	} `yaml:"mail"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadConfig reads the YAML config file at path and applies it on top of the
// env-derived defaults from config.Load.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if fc.Server.Port != 0 {
		cfg.Server.Port = fc.Server.Port
	}
	if fc.Server.ReadTimeout != "" {
		d, err := time.ParseDuration(fc.Server.ReadTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing server.readTimeout: %w", err)
		}
		cfg.Server.ReadTimeout = d
	}
	if fc.Server.WriteTimeout != "" {
		d, err := time.ParseDuration(fc.Server.WriteTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing server.writeTimeout: %w", err)
		}
		cfg.Server.WriteTimeout = d
	}
	if fc.Server.IdleTimeout != "" {
		d, err := time.ParseDuration(fc.Server.IdleTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing server.idleTimeout: %w", err)
		}
		cfg.Server.IdleTimeout = d
	}
	if fc.Server.ShutdownTimeout != "" {
		d, err := time.ParseDuration(fc.Server.ShutdownTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing server.shutdownTimeout: %w", err)
		}
		cfg.Server.ShutdownTimeout = d
	}
	if fc.Database.Host != "" {
		cfg.Database.Host = fc.Database.Host
	}
	if fc.Database.Port != 0 {
		cfg.Database.Port = fc.Database.Port
	}
	if fc.Database.User != "" {
		cfg.Database.User = fc.Database.User
	}
	if fc.Database.Password != "" {
		cfg.Database.Password = fc.Database.Password
	}
	if fc.Database.Name != "" {
		cfg.Database.Name = fc.Database.Name
	}
	if fc.Database.MaxOpenConns != 0 {
		cfg.Database.MaxOpenConns = fc.Database.MaxOpenConns
	}
	if fc.Database.MaxIdleConns != 0 {
		cfg.Database.MaxIdleConns = fc.Database.MaxIdleConns
	}
	if fc.Database.ConnMaxLifetime != "" {
		d, err := time.ParseDuration(fc.Database.ConnMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("parsing database.connMaxLifetime: %w", err)
		}
		cfg.Database.ConnMaxLifetime = d
	}
	if fc.Order.TxTimeout != "" {
		d, err := time.ParseDuration(fc.Order.TxTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing order.txTimeout: %w", err)
		}
		cfg.Order.TxTimeout = d
	}
	if fc.Order.NumberMaxAttempts != 0 {
		cfg.Order.NumberMaxAttempts = fc.Order.NumberMaxAttempts
	}
	if fc.Mail.BaseURL != "" {
		cfg.Mail.BaseURL = fc.Mail.BaseURL
	}
	if fc.Mail.APIKey != "" {
		cfg.Mail.APIKey = fc.Mail.APIKey
	}
	if fc.Mail.SenderName != "" {
		cfg.Mail.SenderName = fc.Mail.SenderName
	}
	if fc.Mail.SenderEmail != "" {
		cfg.Mail.SenderEmail = fc.Mail.SenderEmail
	}
	if fc.Mail.AdminEmail != "" {
		cfg.Mail.AdminEmail = fc.Mail.AdminEmail
	}
	if fc.Mail.Timeout != "" {
		d, err := time.ParseDuration(fc.Mail.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing mail.timeout: %w", err)
		}
		cfg.Mail.Timeout = d
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}

	return cfg, nil
}
