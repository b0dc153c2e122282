package configurator

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/edgefleet/nmconfig/mapping"
)

// IdentifyHost selects the preconfigured host that shares at least one MAC
// address with a local network interface. Logical names play no part in
// identification. More than one matching host is a misconfiguration: it is
// reported as a warning and the first match in mapping order wins.
func IdentifyHost(hosts []mapping.Host, nics []NetworkInterface) (*mapping.Host, error) {
	var matches []*mapping.Host

	for i := range hosts {
		if matchesLocalNIC(&hosts[i], nics) {
			matches = append(matches, &hosts[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, errors.New("none of the preconfigured hosts match local network interfaces")
	case 1:
	default:
		names := make([]string, 0, len(matches))
		for _, host := range matches {
			names = append(names, host.Hostname)
		}
		log.Warnf("multiple preconfigured hosts match local network interfaces (%s), using %q",
			strings.Join(names, ", "), matches[0].Hostname)
	}

	return matches[0], nil
}

func matchesLocalNIC(host *mapping.Host, nics []NetworkInterface) bool {
	for _, i := range host.Interfaces {
		for _, nic := range nics {
			if nic.MACAddress != "" && nic.MACAddress == i.MACAddress {
				return true
			}
		}
	}
	return false
}
