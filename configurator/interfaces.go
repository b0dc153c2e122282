package configurator

import (
	"net"
	"strings"

	"github.com/pkg/errors"
)

// NetworkInterface is one local NIC as reported by the OS. MACAddress is
// empty for interfaces without a hardware address.
type NetworkInterface struct {
	Name       string
	MACAddress string
}

// ListNetworkInterfaces queries the OS for the current set of local network
// interfaces. MAC addresses are reported in canonical lower case form.
func ListNetworkInterfaces() ([]NetworkInterface, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return nil, errors.Wrap(err, "listing network interfaces")
	}

	nics := make([]NetworkInterface, 0, len(interfaces))
	for _, i := range interfaces {
		nics = append(nics, NetworkInterface{
			Name:       i.Name,
			MACAddress: strings.ToLower(i.HardwareAddr.String()),
		})
	}

	return nics, nil
}
