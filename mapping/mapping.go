package mapping

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/edgefleet/nmconfig/ioutils"
)

// DefaultFile is the name of the host mapping file within a generated
// output directory.
const DefaultFile = "host_config.yaml"

// Interface describes a single network interface of a preconfigured host.
type Interface struct {
	LogicalName   string `yaml:"logical_name"`
	MACAddress    string `yaml:"mac_address"`
	InterfaceType string `yaml:"interface_type,omitempty"`
}

// Host associates a hostname with the network interfaces its generated
// connection files refer to.
type Host struct {
	Hostname   string      `yaml:"hostname"`
	Interfaces []Interface `yaml:"interfaces"`
}

// LookupInterface returns the interface with the given logical name,
// or nil if the host does not declare one.
func (h *Host) LookupInterface(logicalName string) *Interface {
	for i := range h.Interfaces {
		if h.Interfaces[i].LogicalName == logicalName {
			return &h.Interfaces[i]
		}
	}
	return nil
}

// Load reads the host mapping file at path and returns its hosts in file
// order. MAC addresses are normalized to lower case so that matching
// against local interfaces is case insensitive.
func Load(path string) ([]Host, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading host mapping file")
	}

	var hosts []Host
	if err := yaml.Unmarshal(data, &hosts); err != nil {
		return nil, errors.Wrap(err, "parsing host mapping file")
	}

	for i := range hosts {
		normalize(&hosts[i])
	}

	return hosts, nil
}

// Append adds one host record to the mapping file at path, creating the
// file if necessary. The full sequence is rewritten atomically so the file
// is always one coherent YAML list of hosts.
func Append(path string, host Host) error {
	hosts, err := Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	normalize(&host)
	hosts = append(hosts, host)

	data, err := yaml.Marshal(hosts)
	if err != nil {
		return errors.Wrap(err, "serializing host mapping")
	}

	if err := ioutils.AtomicWriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, "writing host mapping file")
	}
	return nil
}

func normalize(host *Host) {
	for i := range host.Interfaces {
		host.Interfaces[i].MACAddress = strings.ToLower(host.Interfaces[i].MACAddress)
	}
}
