package cmd

import "time"

// Config carries all process configuration, sourced from the environment.
// Duration tunables default in code when left unset.
type Config struct {
	HTTPPort             string
	ShopifyShopDomain    string
	ShopifyAccessToken   string
	ShopifyWebhookSecret string
	TargetLocationID     string
	SettleDelay          time.Duration
	RetentionWindow      time.Duration
}
