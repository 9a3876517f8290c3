package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	consts "github.com/veriscan-io/veriscan-cli/internal/shared/constants"
)

const (
	defaultHTTPTimeoutSeconds = 15
	defaultDNSTimeoutSeconds  = 5
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Scan ScanRuntimeConfig
}

// ScanRuntimeConfig consolidates flag-driven settings for scan commands.
type ScanRuntimeConfig struct {
	Concurrency     int
	RateLimit       int
	HTTPTimeoutSecs int
	DNSTimeoutSecs  int
	UserAgent       string
	Nameservers     []string
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Scan: ScanRuntimeConfig{
			Concurrency:     consts.DefaultProbeConcurrency,
			RateLimit:       consts.DefaultProbeRateLimit,
			HTTPTimeoutSecs: defaultHTTPTimeoutSeconds,
			DNSTimeoutSecs:  defaultDNSTimeoutSeconds,
			UserAgent:       consts.CrawlUserAgent,
			Nameservers:     []string{},
		},
	}
}

// applyConfigDefaults merges config file defaults into the runtime config when
// the user did not explicitly override the corresponding flag.
func applyConfigDefaults(cmd *cobra.Command) {
	if viper.IsSet("scan.concurrency") {
		applyIntDefault(scanRunCmd.Flags(), "concurrency", viper.GetInt("scan.concurrency"), func(v int) {
			cliConfig.Scan.Concurrency = v
		})
	}

	if viper.IsSet("scan.rate_limit") {
		applyIntDefault(scanRunCmd.Flags(), "rate-limit", viper.GetInt("scan.rate_limit"), func(v int) {
			cliConfig.Scan.RateLimit = v
		})
	}

	if viper.IsSet("scan.http_timeout_secs") {
		applyIntDefault(scanRunCmd.Flags(), "timeout", viper.GetInt("scan.http_timeout_secs"), func(v int) {
			cliConfig.Scan.HTTPTimeoutSecs = v
		})
	}

	if viper.IsSet("scan.dns_timeout_secs") {
		val := viper.GetInt("scan.dns_timeout_secs")
		if val > 0 {
			cliConfig.Scan.DNSTimeoutSecs = val
		}
	}

	if viper.IsSet("scan.user_agent") {
		if ua := viper.GetString("scan.user_agent"); ua != "" {
			cliConfig.Scan.UserAgent = ua
		}
	}

	if viper.IsSet("scan.nameservers") {
		cliConfig.Scan.Nameservers = viper.GetStringSlice("scan.nameservers")
	}
}

// applyFlagOverrides picks up scan tuning flags from the invoked command.
// Flags beat config file values.
func applyFlagOverrides(cmd *cobra.Command) {
	applyChangedInt(cmd.Flags(), "concurrency", func(v int) { cliConfig.Scan.Concurrency = v })
	applyChangedInt(cmd.Flags(), "rate-limit", func(v int) { cliConfig.Scan.RateLimit = v })
	applyChangedInt(cmd.Flags(), "timeout", func(v int) { cliConfig.Scan.HTTPTimeoutSecs = v })
}

func applyChangedInt(flags *pflag.FlagSet, name string, setter func(int)) {
	flag := flags.Lookup(name)
	if flag == nil || !flag.Changed {
		return
	}
	if v, err := flags.GetInt(name); err == nil && v > 0 {
		setter(v)
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}
