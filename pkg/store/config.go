package store

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the store location and the per-user tracking defaults.
type Config interface {
	BasePath() string
	User() string
	Prefix() string
	PackPrice() float64
	CigarettesPerPack() int
}

// LoadConfig reads .rauchfrei.yaml (current directory, or the directory named
// by RAUCHFREI_CONFIG_PATH) and the RAUCHFREI_* environment.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.rauchfrei.db")
	v.SetDefault("user", "demo-user-001")
	v.SetDefault("prefix", "rauchfrei")
	v.SetDefault("pack_price", 8.50)
	v.SetDefault("cigarettes_per_pack", 20)

	v.SetConfigName(".rauchfrei") // .yaml is implicit
	v.SetEnvPrefix("RAUCHFREI")
	v.AutomaticEnv()

	if override := v.GetString("config_path"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:    path,
		UserID:  v.GetString("user"),
		KeySpace: v.GetString("prefix"),
		Price:   v.GetFloat64("pack_price"),
		PerPack: v.GetInt("cigarettes_per_pack"),
	}, nil
}

type fileConfig struct {
	Path     string  `json:"path"`
	UserID   string  `json:"user"`
	KeySpace string  `json:"prefix"`
	Price    float64 `json:"pack_price"`
	PerPack  int     `json:"cigarettes_per_pack"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) User() string { return f.UserID }

func (f *fileConfig) Prefix() string { return f.KeySpace }

func (f *fileConfig) PackPrice() float64 { return f.Price }

func (f *fileConfig) CigarettesPerPack() int {
	if f.PerPack <= 0 {
		return 20
	}
	return f.PerPack
}
