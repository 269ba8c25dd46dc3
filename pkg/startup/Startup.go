package startup

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/simplecontainer/massview/pkg/configuration"
	"github.com/simplecontainer/massview/pkg/static"
	"github.com/spf13/viper"
)

// SetDefaults registers every configuration key so environment overrides
// resolve during Unmarshal.
func SetDefaults(v *viper.Viper) {
	defaults := configuration.NewConfig()

	v.SetDefault("http.host", defaults.HTTP.Host)
	v.SetDefault("http.port", defaults.HTTP.Port)
	v.SetDefault("http.readTimeout", defaults.HTTP.ReadTimeout)
	v.SetDefault("http.writeTimeout", defaults.HTTP.WriteTimeout)
	v.SetDefault("http.shutdownTimeout", defaults.HTTP.ShutdownTimeout)

	v.SetDefault("upload.maxBytes", defaults.Upload.MaxBytes)
	v.SetDefault("upload.rateLimit", defaults.Upload.RateLimit)
	v.SetDefault("upload.burst", defaults.Upload.Burst)

	v.SetDefault("analysis.defaultBins", defaults.Analysis.DefaultBins)

	v.SetDefault("log", defaults.Log)
}

func Load(v *viper.Viper) (*configuration.Configuration, error) {
	if err := LoadDotEnv(static.DOTENV_FILE); err != nil {
		return nil, err
	}

	SetDefaults(v)

	v.SetEnvPrefix(static.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	configObj := &configuration.Configuration{}

	if err := v.Unmarshal(configObj); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if err := configObj.Validate(); err != nil {
		return nil, err
	}

	return configObj, nil
}

// LoadDotEnv exports the variables of an optional dotenv file. Variables
// already present in the environment win.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	return errors.Wrapf(godotenv.Load(path), "failed to load %s", path)
}
