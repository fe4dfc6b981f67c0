package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/provinciareal/dashboard/internal/api/http"
	"github.com/provinciareal/dashboard/internal/costcalc"
	"github.com/provinciareal/dashboard/internal/datasync"
	"github.com/provinciareal/dashboard/internal/meta"
	"github.com/provinciareal/dashboard/internal/metrics"
	"github.com/provinciareal/dashboard/internal/nuvemshop"
	"github.com/provinciareal/dashboard/internal/ratelimit"
	"github.com/provinciareal/dashboard/internal/rates"
	"github.com/provinciareal/dashboard/internal/store"
	"github.com/provinciareal/dashboard/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	NuvemShop nuvemshop.Config `mapstructure:"nuvemshop"`
	Meta      meta.Config      `mapstructure:"meta"`
	Rates     rates.Config     `mapstructure:"rates"`
	Sync      datasync.Config  `mapstructure:"sync"`
	Costs     costcalc.Config  `mapstructure:"costs"`
	Targets   metrics.Targets  `mapstructure:"targets"`
	Metrics   metrics.Config   `mapstructure:"metrics"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g. MYSQL__DSN for mysql.dsn;
// the common ones are also bound to flat names such as MYSQL_DSN.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/provincia-dashboard")
		v.AddConfigPath("/etc/provincia-dashboard")
		// optional: env vars alone are enough
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

// dsnFromEnv builds a TLS DSN from the individual MYSQL_* variables.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	database := os.Getenv("MYSQL_DATABASE")

	if host == "" || user == "" || password == "" || database == "" {
		return ""
	}
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&tls=custom",
		user, password, host, port, database)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)

	v.SetDefault("logger.level", 0)

	v.SetDefault("http.port", "8080")
	v.SetDefault("http.address", "0.0.0.0")
	v.SetDefault("http.read_timeout", "15s")
	v.SetDefault("http.write_timeout", "60s")
	rl := ratelimit.DefaultConfig()
	v.SetDefault("http.rate_limit.sync_per_hour", rl.SyncPerHour)
	v.SetDefault("http.rate_limit.reads_per_minute", rl.ReadsPerMinute)

	v.SetDefault("nuvemshop.base_url", nuvemshop.DefaultBaseURL)
	v.SetDefault("nuvemshop.per_page", nuvemshop.DefaultPerPage)
	v.SetDefault("nuvemshop.timeout", "30s")

	v.SetDefault("meta.base_url", meta.DefaultBaseURL)
	v.SetDefault("meta.timeout", "30s")
	v.SetDefault("meta.daily_breakdown", true)

	rc := rates.DefaultConfig()
	v.SetDefault("rates.base_url", rc.BaseURL)
	v.SetDefault("rates.fallback_rate", rc.FallbackRate)
	v.SetDefault("rates.timeout", rc.Timeout)
	v.SetDefault("rates.rates_update_period", rc.RatesUpdatePeriod)

	sc := datasync.DefaultConfig()
	v.SetDefault("sync.worker_interval", sc.WorkerInterval)
	v.SetDefault("sync.lookback_days", sc.LookbackDays)

	cc := costcalc.DefaultConfig()
	v.SetDefault("costs.pot", cc.PotUnitCost)
	v.SetDefault("costs.bar", cc.BarUnitCost)

	t := metrics.DefaultTargets()
	v.SetDefault("targets.roas", t.ROAS)
	v.SetDefault("targets.aov", t.AOV)
	v.SetDefault("targets.net_margin", t.NetMarginPct)
	v.SetDefault("targets.ltv_cac", t.LtvCac)
	v.SetDefault("targets.conversion", t.ConversionRate)
	v.SetDefault("targets.gateway_fee_pct", t.GatewayFeePct)
	v.SetDefault("targets.daily_revenue", t.DailyRevenue)
	v.SetDefault("targets.daily_profit", t.DailyProfit)
	v.SetDefault("targets.amber_fraction", t.AmberFraction)

	mc := metrics.DefaultConfig()
	v.SetDefault("metrics.key_policy", mc.KeyPolicy)
	v.SetDefault("metrics.default_timezone", mc.DefaultTimezone)
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars(v *viper.Viper) {
	// MySQL
	_ = v.BindEnv("mysql.dsn", "MYSQL_DSN")
	_ = v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	_ = v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	_ = v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	_ = v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	_ = v.BindEnv("logger.level", "LOG_LEVEL")
	_ = v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	_ = v.BindEnv("http.port", "HTTP_PORT", "PORT")
	_ = v.BindEnv("http.address", "HTTP_ADDRESS")
	_ = v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Sources
	_ = v.BindEnv("nuvemshop.store_id", "NUVEMSHOP_STORE_ID")
	_ = v.BindEnv("nuvemshop.access_token", "NUVEMSHOP_ACCESS_TOKEN")
	_ = v.BindEnv("nuvemshop.user_agent", "NUVEMSHOP_USER_AGENT")
	_ = v.BindEnv("meta.access_token", "META_ACCESS_TOKEN")
	_ = v.BindEnv("meta.account_id", "META_AD_ACCOUNT_ID")
	_ = v.BindEnv("meta.name_filter", "META_CAMPAIGN_FILTER")

	// Rates
	_ = v.BindEnv("rates.fallback_rate", "RATES_FALLBACK_RATE")

	// Sync
	_ = v.BindEnv("sync.worker_interval", "SYNC_WORKER_INTERVAL")
	_ = v.BindEnv("sync.lookback_days", "SYNC_LOOKBACK_DAYS")

	// Costs
	_ = v.BindEnv("costs.pot", "COST_POT_UNIT")
	_ = v.BindEnv("costs.bar", "COST_BAR_UNIT")

	// Metrics
	_ = v.BindEnv("metrics.key_policy", "METRICS_KEY_POLICY")
	_ = v.BindEnv("metrics.default_timezone", "METRICS_DEFAULT_TIMEZONE")
}
