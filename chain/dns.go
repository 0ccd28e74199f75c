package chain

// dnsPrefix is the enrtree root shared by the Ethereum network DNS
// discovery lists.
const dnsPrefix = "enrtree://AKA3AM6LPBYEUDMVNU3BSVQJ5AD45Y7YPOHJLEF6W26QOE4VTUDPE@all."

// PublicDNSNetworkProtocol returns the DNS discovery enrtree URL for the
// chain. Only the Ethereum mainnet and its testnets publish discovery
// lists; every other chain reports false.
func (n Named) PublicDNSNetworkProtocol() (string, bool) {
	switch n {
	case Mainnet, Goerli, Sepolia, Ropsten, Rinkeby, Holesky, Hoodi:
		return dnsPrefix + n.String() + ".ethdisco.net", true
	}

	return "", false
}
