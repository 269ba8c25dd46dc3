package configuration

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/simplecontainer/massview/pkg/static"
	"gopkg.in/yaml.v3"
)

func NewConfig() *Configuration {
	return &Configuration{
		HTTP: HTTP{
			Host:            static.DEFAULT_HOST,
			Port:            static.DEFAULT_PORT,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Upload: Upload{
			MaxBytes:  static.DEFAULT_MAX_UPLOAD,
			RateLimit: static.DEFAULT_RATE_LIMIT,
			Burst:     static.DEFAULT_BURST,
		},
		Analysis: Analysis{
			DefaultBins: static.DEFAULT_BINS,
		},
		Log: static.DEFAULT_LOG_LEVEL,
	}
}

func (c *Configuration) Address() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

func (c *Configuration) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	return nil
}

func (c *Configuration) ToYaml() ([]byte, error) {
	return yaml.Marshal(*c)
}

func Save(c *Configuration, path string) error {
	bytes, err := c.ToYaml()

	if err != nil {
		return errors.Wrap(err, "failed to marshal configuration")
	}

	return errors.Wrapf(os.WriteFile(path, bytes, 0644), "failed to write configuration to %s", path)
}
