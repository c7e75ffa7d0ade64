package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// StorefrontConfig holds display-level storefront settings that operators may
// tune without a redeploy (currency, store identity, support contact).
type StorefrontConfig struct {
	StoreName      string `mapstructure:"storeName"`
	Currency       string `mapstructure:"currency"`
	CurrencySymbol string `mapstructure:"currencySymbol"`
	SupportEmail   string `mapstructure:"supportEmail"`
}

func DefaultStorefrontConfig() StorefrontConfig {
	return StorefrontConfig{
		StoreName:      "OCTOLAB",
		Currency:       "USD",
		CurrencySymbol: "$",
		SupportEmail:   "support@octolab.shop",
	}
}

type StorefrontConfigHolder struct {
	current atomic.Value // holds StorefrontConfig
}

func NewStorefrontConfigHolder() (*StorefrontConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("storefront")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/octolab/config") // Volume-mounted config
	v.AddConfigPath("/etc/octolab")            // System config
	v.AddConfigPath(".")                       // Current directory (dev mode)

	v.SetEnvPrefix("OCTOLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// if config file not found, use defaults
		defaults := DefaultStorefrontConfig()
		v.SetDefault("storefront.storeName", defaults.StoreName)
		v.SetDefault("storefront.currency", defaults.Currency)
		v.SetDefault("storefront.currencySymbol", defaults.CurrencySymbol)
		v.SetDefault("storefront.supportEmail", defaults.SupportEmail)
	}

	var cfg StorefrontConfig
	if err := v.UnmarshalKey("storefront", &cfg); err != nil {
		return nil, err
	}
	if err := validateStorefrontConfig(cfg); err != nil {
		return nil, err
	}

	holder := &StorefrontConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated StorefrontConfig
		if err := v.UnmarshalKey("storefront", &updated); err != nil {
			log.Printf("[storefront-config] reload failed: %v", err)
			return
		}
		if err := validateStorefrontConfig(updated); err != nil {
			log.Printf("[storefront-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[storefront-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticStorefrontConfigHolder returns a holder pinned to cfg, with no
// file watching. Used by tests and one-off tools.
func NewStaticStorefrontConfigHolder(cfg StorefrontConfig) *StorefrontConfigHolder {
	holder := &StorefrontConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *StorefrontConfigHolder) Get() StorefrontConfig {
	return h.current.Load().(StorefrontConfig)
}

func validateStorefrontConfig(cfg StorefrontConfig) error {
	if strings.TrimSpace(cfg.StoreName) == "" {
		return errors.New("storefront.storeName cannot be empty")
	}
	if strings.TrimSpace(cfg.Currency) == "" {
		return errors.New("storefront.currency cannot be empty")
	}
	return nil
}
