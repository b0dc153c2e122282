// Package netstate is the boundary to the declarative network state
// tooling: it extracts the interfaces a network state document declares and
// turns the translation engine's output into connection profile files.
package netstate

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/edgefleet/nmconfig/mapping"
)

// Interface types as they appear in network state documents.
const (
	TypeEthernet = "ethernet"
	TypeLoopback = "loopback"
)

// Engine generates connection profiles from a declarative network state
// document. The returned payload is YAML keyed by target format, e.g.
// "NetworkManager".
type Engine interface {
	GenerateConfiguration(document string) (string, error)
}

// ConnectionFile is one generated connection profile.
type ConnectionFile struct {
	Name    string
	Content string
}

type document struct {
	Interfaces []struct {
		Name       string `yaml:"name"`
		Type       string `yaml:"type"`
		MACAddress string `yaml:"mac-address"`
	} `yaml:"interfaces"`
}

type generatedConfig struct {
	NetworkManager [][]string `yaml:"NetworkManager"`
}

// Interfaces extracts the non-loopback interfaces declared in a network
// state document.
func Interfaces(doc string) ([]mapping.Interface, error) {
	var state document
	if err := yaml.Unmarshal([]byte(doc), &state); err != nil {
		return nil, errors.Wrap(err, "parsing network state document")
	}

	var interfaces []mapping.Interface
	for _, i := range state.Interfaces {
		if i.Type == TypeLoopback {
			continue
		}
		interfaces = append(interfaces, mapping.Interface{
			LogicalName:   i.Name,
			MACAddress:    i.MACAddress,
			InterfaceType: i.Type,
		})
	}

	return interfaces, nil
}

// ParseConfiguration decodes the engine's generated configuration payload
// and returns the NetworkManager connection files it contains.
func ParseConfiguration(payload string) ([]ConnectionFile, error) {
	var config generatedConfig
	if err := yaml.Unmarshal([]byte(payload), &config); err != nil {
		return nil, errors.Wrap(err, "parsing generated configuration")
	}

	if config.NetworkManager == nil {
		return nil, errors.New("invalid configuration: missing NetworkManager section")
	}

	files := make([]ConnectionFile, 0, len(config.NetworkManager))
	for _, pair := range config.NetworkManager {
		if len(pair) != 2 {
			return nil, errors.New("invalid NetworkManager configuration entry")
		}
		files = append(files, ConnectionFile{Name: pair[0], Content: pair[1]})
	}

	return files, nil
}
