package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	octerr "octest/errors"
)

// Profile names one RPC endpoint, so a single interface file can be
// exercised against devnet, testnet and friends without editing the wallet.
type Profile struct {
	Name string `yaml:"name"`
	RPC  string `yaml:"rpc"`
}

type ProfilesFile struct {
	Default  string    `yaml:"default"`
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfiles reads and parses the profiles.yml file.
func LoadProfiles(path string) (*ProfilesFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	defer file.Close()

	var pf ProfilesFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&pf); err != nil {
		return nil, &octerr.ConfigError{Path: path, Err: err}
	}
	return &pf, nil
}

// Resolve returns the RPC URL for a profile name; an empty name selects the
// file's default.
func (pf *ProfilesFile) Resolve(name string) (string, error) {
	if name == "" {
		name = pf.Default
	}
	for _, p := range pf.Profiles {
		if p.Name == name {
			return p.RPC, nil
		}
	}
	return "", fmt.Errorf("profile %q not found", name)
}
