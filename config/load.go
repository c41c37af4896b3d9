package config

import (
	"flag"
	"io/ioutil"
	"path"

	"github.com/fernandosanchezjr/bitpatterns/utils"
	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const PlanFileName = "plan.yaml"

var configPath string

func init() {
	flag.StringVar(&configPath, "plan", "", "specify pattern plan file (default <home-folder>/plan.yaml)")
}

func PlanPath() string {
	if configPath != "" {
		return configPath
	}
	return path.Join(utils.GetHomeFolder(), PlanFileName)
}

func ParseConfig(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadConfig(filePath string) (*Config, error) {
	var data []byte
	var err error
	if filePath, err = homedir.Expand(filePath); err != nil {
		return nil, err
	}
	log.WithField("path", filePath).Infoln("Loading plan")
	if data, err = ioutil.ReadFile(filePath); err != nil {
		return nil, err
	}
	return ParseConfig(data)
}
