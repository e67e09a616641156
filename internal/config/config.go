// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package config

import (
	"errors"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the tool-wide settings. Every field can come from the
// config file, a MAGISCAN_* environment variable or a flag bound by
// the command layer.
type Config struct {
	LogLevel     string `mapstructure:"log_level"`
	MaxReadBytes string `mapstructure:"max_read_bytes"`
	DatabaseFile string `mapstructure:"database_file"`
	NoColor      bool   `mapstructure:"no_color"`
}

var boundFlags = map[string]*pflag.Flag{}

// BindFlag ties a configuration key to a command-line flag. A flag the
// user actually set wins over the config file; an untouched flag does
// not shadow it.
func BindFlag(key string, f *pflag.Flag) {
	boundFlags[key] = f
}

// Load reads the configuration. With an explicit path the file must
// exist; otherwise a magiscan.yaml is searched in the working
// directory and the home directory, and a missing file just yields
// the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	for key, f := range boundFlags {
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, err
		}
	}

	v.SetDefault("log_level", "info")
	v.SetDefault("max_read_bytes", "8KB")
	v.SetDefault("database_file", "")
	v.SetDefault("no_color", false)

	v.SetEnvPrefix("MAGISCAN")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("magiscan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
