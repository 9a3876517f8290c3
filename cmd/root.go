package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/veriscan-io/veriscan-cli/internal/application"
)

var cfgFile string
var logger *zap.SugaredLogger
var dataDir string
var resultsDir string
var catalogFile string
var container *application.Container

const (
	jsonPrefix = ""
	jsonIndent = "  "
)

var rootCmd = &cobra.Command{
	Use:   "veriscan",
	Short: "Digital footprint verification scans for client businesses",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".veriscan")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()

		if dataDir == "" {
			dataDir = viper.GetString("data_dir")
		}
		if dataDir == "" {
			dataDir = "./data"
		}
		if resultsDir == "" {
			resultsDir = viper.GetString("results_dir")
		}
		if resultsDir == "" {
			resultsDir = "./results"
		}
		if catalogFile == "" {
			catalogFile = viper.GetString("catalog_file")
		}

		if err := os.MkdirAll(resultsDir, 0o755); err != nil {
			return fmt.Errorf("failed to create results directory: %s", err.Error())
		}

		// init logger
		l, _ := zap.NewProduction()
		logger = l.Sugar()

		applyConfigDefaults(cmd)
		applyFlagOverrides(cmd)

		// Make dirs absolute for clarity in logs
		if abs, err := filepath.Abs(dataDir); err == nil {
			dataDir = abs
		}
		if abs, err := filepath.Abs(resultsDir); err == nil {
			resultsDir = abs
		}

		c, err := application.NewContainer(dataDir, resultsDir, catalogFile, probeOptions(), logger)
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}
		container = c

		logger.Infof("data_dir=%s results_dir=%s", dataDir, resultsDir)

		return nil
	},
}

func probeOptions() application.ProbeOptions {
	scanCfg := cliConfig.Scan
	return application.ProbeOptions{
		Concurrency: scanCfg.Concurrency,
		RateLimit:   scanCfg.RateLimit,
		HTTPTimeout: time.Duration(scanCfg.HTTPTimeoutSecs) * time.Second,
		DNSTimeout:  time.Duration(scanCfg.DNSTimeoutSecs) * time.Second,
		UserAgent:   scanCfg.UserAgent,
		Nameservers: scanCfg.Nameservers,
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.veriscan.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for client profiles (default ./data)")
	rootCmd.PersistentFlags().StringVar(&resultsDir, "results-dir", "", "directory for scan results (default ./results)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "surface catalog override file (JSON)")

	// add subcommands
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(surfacesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}
