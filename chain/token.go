package chain

import "github.com/ethereum/go-ethereum/common"

// WrappedNativeToken returns the address of the canonical wrapped-native
// token contract deployed on the chain, e.g. WETH on Mainnet and WBNB on
// BinanceSmartChain. Chains without a recorded deployment report false.
func (n Named) WrappedNativeToken() (common.Address, bool) {
	switch n {
	case Mainnet:
		return common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), true
	case Optimism:
		return common.HexToAddress("0x4200000000000000000000000000000000000006"), true
	case BinanceSmartChain:
		return common.HexToAddress("0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c"), true
	case OpBNBMainnet:
		return common.HexToAddress("0x4200000000000000000000000000000000000006"), true
	case Arbitrum:
		return common.HexToAddress("0x82af49447d8a07e3bd95bd0d56f35241523fbab1"), true
	case Base:
		return common.HexToAddress("0x4200000000000000000000000000000000000006"), true
	case Linea:
		return common.HexToAddress("0xe5d7c2a44ffddf6b295a15c148167daaaf5cf34f"), true
	case Mantle:
		return common.HexToAddress("0xdeaddeaddeaddeaddeaddeaddeaddeaddead1111"), true
	case Blast:
		return common.HexToAddress("0x4300000000000000000000000000000000000004"), true
	case Gnosis:
		return common.HexToAddress("0xe91d153e0b41518a2ce8dd3d7944fa863463a97d"), true
	case Scroll:
		return common.HexToAddress("0x5300000000000000000000000000000000000004"), true
	case Taiko:
		return common.HexToAddress("0xa51894664a773981c6c112c43ce576f315d5b1b6"), true
	case Avalanche:
		return common.HexToAddress("0xb31f66aa3c1e785363f0875a1b74e27b85fd66c7"), true
	case Polygon:
		return common.HexToAddress("0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270"), true
	case Fantom:
		return common.HexToAddress("0x21be370d5312f44cb42ce377bc9b8a0cef1a4c83"), true
	case Iotex:
		return common.HexToAddress("0xa00744882684c3e4747faefd68d283ea44099d03"), true
	case Core:
		return common.HexToAddress("0x40375C92d9FAf44d2f9db9Bd9ba41a3317a2404f"), true
	case Merlin:
		return common.HexToAddress("0xF6D226f9Dc15d9bB51182815b320D3fBE324e1bA"), true
	case Bitlayer:
		return common.HexToAddress("0xff204e2681a6fa0e2c3fade68a1b28fb90e4fc5f"), true
	case ApeChain:
		return common.HexToAddress("0x48b62137EdfA95a428D35C09E44256a739F6B557"), true
	case Vana:
		return common.HexToAddress("0x00EDdD9621Fb08436d0331c149D1690909a5906d"), true
	case Zeta:
		return common.HexToAddress("0x5F0b1a82749cb4E2278EC87F8BF6B618dC71a8bf"), true
	case Kaia:
		return common.HexToAddress("0x19aac5f612f524b754ca7e7c41cbfa2e981a4432"), true
	case Story:
		return common.HexToAddress("0x1514000000000000000000000000000000000000"), true
	case Treasure:
		return common.HexToAddress("0x263d8f36bb8d0d9526255e205868c26690b04b88"), true
	case Superposition:
		return common.HexToAddress("0x1fB719f10b56d7a85DCD32f27f897375fB21cfdd"), true
	case Sonic:
		return common.HexToAddress("0x039e2fB66102314Ce7b64Ce5Ce3E5183bc94aD38"), true
	case Berachain:
		return common.HexToAddress("0x6969696969696969696969696969696969696969"), true
	case Hyperliquid:
		return common.HexToAddress("0x5555555555555555555555555555555555555555"), true
	case Abstract:
		return common.HexToAddress("0x3439153EB7AF838Ad19d56E1571FBD09333C2809"), true
	case Sei:
		return common.HexToAddress("0xE30feDd158A2e3b13e9badaeABaFc5516e95e8C7"), true
	case ZkSync:
		return common.HexToAddress("0x5aea5775959fbc2557cc8789bc1bf90a239d9a91"), true
	case Sophon:
		return common.HexToAddress("0xf1f9e08a0818594fde4713ae0db1e46672ca960e"), true
	case Rsk:
		return common.HexToAddress("0x967f8799af07df1534d48a95a5c9febe92c53ae0"), true
	case MemeCore, Formicarium, Insectarium:
		return common.HexToAddress("0x653e645e3d81a72e71328Bc01A04002945E3ef7A"), true
	}

	return common.Address{}, false
}
