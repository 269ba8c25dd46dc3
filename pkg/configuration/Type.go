package configuration

import "time"

type Configuration struct {
	HTTP     HTTP     `mapstructure:"http" yaml:"http" json:"http"`
	Upload   Upload   `mapstructure:"upload" yaml:"upload" json:"upload"`
	Analysis Analysis `mapstructure:"analysis" yaml:"analysis" json:"analysis"`
	Log      string   `mapstructure:"log" yaml:"log" json:"log" validate:"oneof=debug info warn error dpanic panic fatal"`
}

type HTTP struct {
	Host            string        `mapstructure:"host" yaml:"host" json:"host" validate:"required"`
	Port            int           `mapstructure:"port" yaml:"port" json:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout" yaml:"readTimeout" json:"readTimeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout" yaml:"writeTimeout" json:"writeTimeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout" json:"shutdownTimeout" validate:"gte=0"`
}

type Upload struct {
	MaxBytes  int64   `mapstructure:"maxBytes" yaml:"maxBytes" json:"maxBytes" validate:"gt=0"`
	RateLimit float64 `mapstructure:"rateLimit" yaml:"rateLimit" json:"rateLimit" validate:"gte=0"`
	Burst     int     `mapstructure:"burst" yaml:"burst" json:"burst" validate:"gte=0"`
}

type Analysis struct {
	DefaultBins int `mapstructure:"defaultBins" yaml:"defaultBins" json:"defaultBins" validate:"gt=0"`
}
