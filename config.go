package routepick

import (
	"io"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Routes               string   `yaml:"routes"`
	RouteSets            []string `yaml:"route_sets"`
	AlternatesSelectable bool     `yaml:"alternates_selectable"`
	Visible              bool     `yaml:"visible"`
	Listen               string   `yaml:"listen"`
}

func NewConfig() *Config {
	return &Config{
		AlternatesSelectable: true,
		Visible:              true,
		Listen:               ":8888",
	}
}

func ReadConfig(filename string) (*Config, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ParseConfig(fp)
}

// ParseConfig reads a YAML config. Missing keys keep their defaults.
func ParseConfig(in io.Reader) (*Config, error) {
	c := NewConfig()
	err := yaml.NewDecoder(in).Decode(c)
	if err == io.EOF {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Locations lists every route set to load, in order.
func (c *Config) Locations() []string {
	locations := make([]string, 0, len(c.RouteSets)+1)
	if c.Routes != "" {
		locations = append(locations, c.Routes)
	}
	return append(locations, c.RouteSets...)
}
