// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gogama/fetchx"
	"github.com/gogama/fetchx/fault"
	"github.com/gogama/fetchx/timeout"
)

// optionKeys are the keys options decodes, from flags, environment,
// and config file alike.
var optionKeys = []string{"url", "timeout", "data", "verbose"}

type options struct {
	fetchx.Config `mapstructure:",squash"`

	// Data is the POST body. A non-empty value, or an explicit --data
	// flag, switches the request from GET to POST.
	Data    string `mapstructure:"data"`
	Verbose bool   `mapstructure:"verbose"`
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "fetchx [flags] [URL]",
		Short: "Fetch a URL and print the response body as text",
		Long: `fetchx fetches a URL with GET, or with POST when --data is given,
streams the response body while logging progress, and prints the body
decoded as UTF-8 text.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(v, configFile, args)
			if err != nil {
				return err
			}
			post := opts.Data != "" || cmd.Flags().Changed("data")
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, post)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (yaml, json, or toml)")
	flags.String("url", "", "URL to fetch, if not given as an argument")
	flags.Duration("timeout", timeout.Default, "time limit for the whole fetch, including the body")
	flags.StringP("data", "d", "", "send a POST request with this body")
	flags.BoolP("verbose", "v", false, "log progress while the body streams")
	for _, name := range optionKeys {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	v.SetEnvPrefix("FETCHX")
	v.AutomaticEnv()

	return cmd
}

func loadOptions(v *viper.Viper, configFile string, args []string) (options, error) {
	var opts options
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return opts, fmt.Errorf("reading config: %w", err)
		}
		if err := checkConfigKeys(configFile); err != nil {
			return opts, fmt.Errorf("decoding config: %w", err)
		}
	}
	if len(args) == 1 {
		v.Set("url", args[0])
	}
	if err := v.UnmarshalExact(&opts); err != nil {
		return opts, fmt.Errorf("decoding config: %w", err)
	}
	return opts, nil
}

// checkConfigKeys rejects top-level keys in the config file that
// options does not decode. UnmarshalExact alone misses a key whose
// value is an empty table, because viper drops it while flattening.
func checkConfigKeys(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	raw := map[string]interface{}{}
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "toml":
		err = toml.Unmarshal(b, &raw)
	case "yaml", "yml", "json":
		err = yaml.Unmarshal(b, &raw)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	var unknown []string
	for key := range raw {
		if !isOptionKey(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown keys: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func isOptionKey(key string) bool {
	for _, k := range optionKeys {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

func run(ctx context.Context, out, errOut io.Writer, opts options, post bool) error {
	log := logrus.New()
	log.SetOutput(errOut)
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	f, err := fetchx.New(opts.Config)
	if err != nil {
		log.WithError(err).Error("Invalid configuration")
		return err
	}
	f.Logger = log

	var text string
	if post {
		text, err = f.Post(ctx, opts.Data)
	} else {
		text, err = f.Get(ctx)
	}
	if err != nil {
		log.WithError(err).
			WithField("phase", fault.PhaseOf(err).String()).
			WithField("timeout", fault.Categorize(err) == fault.Timeout).
			Error("Fetch failed")
		return err
	}

	_, err = io.WriteString(out, text)
	return err
}
