// Package generator turns per-host declarative network state documents into
// installable NetworkManager connection files plus the host mapping that the
// run time configurator uses to identify a machine.
package generator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/edgefleet/nmconfig/mapping"
	"github.com/edgefleet/nmconfig/netstate"
)

const (
	// AllNodesFile marks a config dir holding a single, undifferentiated
	// configuration that applies to every node.
	AllNodesFile = "_all.yaml"

	// AllNodesDir is the output subdirectory for the all-nodes configuration.
	AllNodesDir = "_all"
)

// Generator produces connection files and host mappings from a directory of
// network state documents, one document per host.
type Generator struct {
	engine netstate.Engine
}

func New(engine netstate.Engine) *Generator {
	return &Generator{engine: engine}
}

// Run processes every network state document in configDir and stores the
// generated connection files under outputDir, one subdirectory per host,
// appending each host to the mapping file. A failure for any document aborts
// the whole run.
func (g *Generator) Run(configDir, outputDir string) error {
	entries, err := os.ReadDir(configDir)
	if err != nil {
		return errors.Wrap(err, "reading config dir")
	}

	if len(entries) == 0 {
		return errors.New("empty config directory")
	}

	if len(entries) == 1 && entries[0].Name() == AllNodesFile {
		return g.generateAllNodes(filepath.Join(configDir, AllNodesFile), outputDir)
	}

	for _, entry := range entries {
		path := filepath.Join(configDir, entry.Name())

		if entry.IsDir() {
			log.Warnf("ignoring unexpected dir: %s", path)
			continue
		}

		log.Infof("generating config from %s...", path)

		hostname := Hostname(entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "reading network state document")
		}

		interfaces, files, err := g.generate(string(data))
		if err != nil {
			return errors.Wrapf(err, "generating config for host %q", hostname)
		}

		if err := storeConnectionFiles(outputDir, hostname, files); err != nil {
			return errors.Wrap(err, "storing network config")
		}

		host := mapping.Host{Hostname: hostname, Interfaces: interfaces}
		if err := mapping.Append(filepath.Join(outputDir, mapping.DefaultFile), host); err != nil {
			return errors.Wrap(err, "storing network mapping")
		}
	}

	return nil
}

// generateAllNodes handles the single-file special case: the configuration
// applies to every node, so no host mapping is produced and the run time
// identification step does not apply to its output.
func (g *Generator) generateAllNodes(path, outputDir string) error {
	log.Infof("generating all-nodes config from %s...", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading network state document")
	}

	_, files, err := g.generate(string(data))
	if err != nil {
		return err
	}

	return errors.Wrap(storeConnectionFiles(outputDir, AllNodesDir, files), "storing network config")
}

func (g *Generator) generate(doc string) ([]mapping.Interface, []netstate.ConnectionFile, error) {
	interfaces, err := netstate.Interfaces(doc)
	if err != nil {
		return nil, nil, err
	}

	if err := validateInterfaces(interfaces); err != nil {
		return nil, nil, err
	}

	payload, err := g.engine.GenerateConfiguration(doc)
	if err != nil {
		return nil, nil, errors.Wrap(err, "generating configuration")
	}

	files, err := netstate.ParseConfiguration(payload)
	if err != nil {
		return nil, nil, err
	}

	return interfaces, files, nil
}

// Hostname derives a hostname from a config file name, stripping a trailing
// YAML extension if one is present.
func Hostname(filename string) string {
	switch ext := filepath.Ext(filename); ext {
	case ".yaml", ".yml":
		return strings.TrimSuffix(filename, ext)
	default:
		return filename
	}
}

// validateInterfaces requires at least one Ethernet interface and a MAC
// address on every Ethernet interface, since identification at run time is
// MAC based.
func validateInterfaces(interfaces []mapping.Interface) error {
	hasEthernet := false
	var missingMAC []string

	for _, i := range interfaces {
		if i.InterfaceType != netstate.TypeEthernet {
			continue
		}
		hasEthernet = true
		if i.MACAddress == "" {
			missingMAC = append(missingMAC, i.LogicalName)
		}
	}

	if !hasEthernet {
		return errors.New("no Ethernet interfaces were provided")
	}

	if len(missingMAC) != 0 {
		return errors.Errorf("detected Ethernet interfaces without a MAC address: %s",
			strings.Join(missingMAC, ", "))
	}

	return nil
}

func storeConnectionFiles(outputDir, hostname string, files []netstate.ConnectionFile) error {
	hostDir := filepath.Join(outputDir, hostname)
	if err := os.MkdirAll(hostDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output dir")
	}

	for _, file := range files {
		path := filepath.Join(hostDir, file.Name)
		if err := os.WriteFile(path, []byte(file.Content), 0o600); err != nil {
			return errors.Wrapf(err, "writing config file %q", path)
		}
	}

	return nil
}
