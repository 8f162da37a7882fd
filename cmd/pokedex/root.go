package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pokedex-srv/pkg/log"
	"pokedex-srv/pkg/pokedex"
	"pokedex-srv/pkg/querycache"
)

const (
	envPrefix = "POKEDEX"

	keyAPIURL   = "api_url"
	keyToken    = "token"
	keyPageSize = "page_size"
	keyTimeout  = "timeout"
	keyLogLevel = "log_level"
)

// app holds what every subcommand needs. It is built once per invocation.
type app struct {
	v       *viper.Viper
	l       log.Logger
	client  *pokedex.Client
	catalog *pokedex.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Browse and manage the Pokédex catalog",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	flags := root.PersistentFlags()
	flags.String("api-url", pokedex.DefaultBaseURL, "base URL of the Pokédex API")
	flags.String("token", "", "bearer token (env POKEDEX_TOKEN)")
	flags.Int("page-size", pokedex.DefaultPageSize, "number of Pokémon per page")
	flags.Duration("timeout", pokedex.DefaultTimeout, "per-request timeout")
	flags.String("log-level", "warn", "log level")

	_ = a.v.BindPFlag(keyAPIURL, flags.Lookup("api-url"))
	_ = a.v.BindPFlag(keyToken, flags.Lookup("token"))
	_ = a.v.BindPFlag(keyPageSize, flags.Lookup("page-size"))
	_ = a.v.BindPFlag(keyTimeout, flags.Lookup("timeout"))
	_ = a.v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newMovesCmd(a),
		newDeleteCmd(a),
		newLoginCmd(a),
		newRegisterCmd(a),
	)
	return root
}

func (a *app) init() error {
	a.l = log.Init(log.ZapConfig{
		Level:    a.v.GetString(keyLogLevel),
		Mode:     "production",
		Encoding: "console",
	})

	timeout := a.v.GetDuration(keyTimeout)
	if timeout <= 0 {
		timeout = pokedex.DefaultTimeout
	}
	a.client = pokedex.NewClient(pokedex.ClientConfig{
		BaseURL:   a.v.GetString(keyAPIURL),
		Token:     a.v.GetString(keyToken),
		Timeout:   timeout,
		RetryWait: 500 * time.Millisecond,
	})
	a.catalog = pokedex.NewCatalog(a.client, querycache.New(), a.l, pokedex.CatalogOptions{
		PageSize: a.v.GetInt(keyPageSize),
	})
	return nil
}
