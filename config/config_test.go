package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Postgres: PostgresConfig{Host: "localhost", Port: 5432, DBName: "pokedex", User: "postgres"},
		Redis:    RedisConfig{Host: "localhost", Port: 6379},
		JWT:      JWTConfig{Algorithm: "HS256", SecretKey: "0123456789abcdef0123456789abcdef", TTL: 60},
		Cookie:   CookieConfig{Name: "pokedex_auth_token"},
	}
}

func TestValidate(t *testing.T) {
	tcs := map[string]struct {
		mutate  func(*Config)
		wantErr bool
	}{
		"valid": {
			mutate: func(*Config) {},
		},
		"short secret": {
			mutate:  func(c *Config) { c.JWT.SecretKey = "short" },
			wantErr: true,
		},
		"unsupported algorithm": {
			mutate:  func(c *Config) { c.JWT.Algorithm = "RS256" },
			wantErr: true,
		},
		"url replaces discrete postgres fields": {
			mutate: func(c *Config) {
				c.Postgres = PostgresConfig{URL: "postgres://u:p@db:5432/pokedex?sslmode=disable"}
			},
		},
		"missing postgres host": {
			mutate:  func(c *Config) { c.Postgres.Host = "" },
			wantErr: true,
		},
		"redis url replaces host and port": {
			mutate: func(c *Config) {
				c.Redis = RedisConfig{URL: "redis://cache:6379/1"}
			},
		},
		"missing redis host": {
			mutate:  func(c *Config) { c.Redis.Host = "" },
			wantErr: true,
		},
		"kafka brokers without topic": {
			mutate: func(c *Config) {
				c.Kafka.Brokers = []string{"localhost:9092"}
			},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := validate(cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
