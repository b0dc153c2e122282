// Package configurator implements the run time half of the provisioning
// flow: it identifies the booted machine among the preconfigured hosts by
// MAC address and installs that host's connection files, renaming interfaces
// whose OS-assigned name differs from the preconfigured one.
package configurator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/edgefleet/nmconfig/ioutils"
	"github.com/edgefleet/nmconfig/mapping"
)

// ConnectionFileExt identifies NetworkManager connection files.
const ConnectionFileExt = ".nmconnection"

// Apply identifies the local machine among the hosts mapped in sourceDir and
// installs its connection files into destinationDir. Nothing is written when
// no host matches.
func Apply(sourceDir, destinationDir string, nics []NetworkInterface) error {
	hosts, err := mapping.Load(filepath.Join(sourceDir, mapping.DefaultFile))
	if err != nil {
		return errors.Wrap(err, "loading host mapping")
	}

	host, err := IdentifyHost(hosts, nics)
	if err != nil {
		return errors.Wrap(err, "identifying host")
	}
	log.Infof("identified host: %s", host.Hostname)

	if err := InstallConnectionFiles(host, nics, sourceDir, destinationDir); err != nil {
		return errors.Wrap(err, "copying files")
	}

	return nil
}

// InstallConnectionFiles copies every connection file from the host's
// subdirectory of sourceDir into destinationDir. When the local NIC carrying
// a preconfigured MAC address has a different name than the preconfigured
// logical name, all references to the logical name are rewritten and the
// destination file is named after the local NIC.
func InstallConnectionFiles(host *mapping.Host, nics []NetworkInterface, sourceDir, destinationDir string) error {
	hostConfigDir := filepath.Join(sourceDir, host.Hostname)
	entries, err := os.ReadDir(hostConfigDir)
	if err != nil {
		return errors.Wrap(err, "reading host config dir")
	}

	if err := os.MkdirAll(destinationDir, 0o755); err != nil {
		return errors.Wrap(err, "creating destination dir")
	}

	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() || filepath.Ext(name) != ConnectionFileExt {
			log.Warnf("ignoring unexpected entry: %s", filepath.Join(hostConfigDir, name))
			continue
		}

		source := filepath.Join(hostConfigDir, name)
		log.Infof("copying file... %s", source)

		data, err := os.ReadFile(source)
		if err != nil {
			return errors.Wrapf(err, "reading file %q", source)
		}

		content := string(data)
		resolvedName := strings.TrimSuffix(name, ConnectionFileExt)

		if nic := renamedNIC(host, nics, resolvedName); nic != nil {
			content = strings.ReplaceAll(content, resolvedName, nic.Name)
			resolvedName = nic.Name
		}

		destination := filepath.Join(destinationDir, resolvedName+ConnectionFileExt)
		if err := ioutils.AtomicWriteFile(destination, []byte(content), 0o600); err != nil {
			return errors.Wrapf(err, "writing file %q", destination)
		}
	}

	return nil
}

// renamedNIC returns the local NIC that carries the MAC address
// preconfigured for logicalName but runs under a different name, or nil when
// no rename is needed.
func renamedNIC(host *mapping.Host, nics []NetworkInterface, logicalName string) *NetworkInterface {
	iface := host.LookupInterface(logicalName)
	if iface == nil {
		return nil
	}

	for i := range nics {
		nic := &nics[i]
		if nic.MACAddress != "" && nic.MACAddress == iface.MACAddress && nic.Name != iface.LogicalName {
			log.Infof("using name %q for interface with MAC address %q instead of the preconfigured %q",
				nic.Name, iface.MACAddress, iface.LogicalName)
			return nic
		}
	}

	return nil
}
