package netstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgefleet/nmconfig/mapping"
)

func TestInterfacesSkipsLoopback(t *testing.T) {
	doc := `interfaces:
  - name: eth1
    type: ethernet
    mac-address: FE:C4:05:42:8B:AA
  - name: bridge0
    type: linux-bridge
    mac-address: FE:C4:05:42:8B:AB
  - name: lo
    type: loopback
    mac-address: 00:00:00:00:00:00
`
	interfaces, err := Interfaces(doc)
	require.NoError(t, err)

	assert.Equal(t, []mapping.Interface{
		{LogicalName: "eth1", MACAddress: "FE:C4:05:42:8B:AA", InterfaceType: "ethernet"},
		{LogicalName: "bridge0", MACAddress: "FE:C4:05:42:8B:AB", InterfaceType: "linux-bridge"},
	}, interfaces)
}

func TestInterfacesInvalidDocument(t *testing.T) {
	_, err := Interfaces("\t<not yaml>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing network state document")
}

func TestParseConfiguration(t *testing.T) {
	payload := `NetworkManager:
  - - eth0.nmconnection
    - |
      [connection]
      id=eth0
  - - bridge0.nmconnection
    - |
      [connection]
      id=bridge0
`
	files, err := ParseConfiguration(payload)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "eth0.nmconnection", files[0].Name)
	assert.Contains(t, files[0].Content, "id=eth0")
	assert.Equal(t, "bridge0.nmconnection", files[1].Name)
}

func TestParseConfigurationMissingNetworkManagerSection(t *testing.T) {
	_, err := ParseConfiguration("OtherFormat: []")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing NetworkManager section")
}

func TestParseConfigurationMalformedEntry(t *testing.T) {
	payload := `NetworkManager:
  - - eth0.nmconnection
`
	_, err := ParseConfiguration(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid NetworkManager configuration entry")
}
