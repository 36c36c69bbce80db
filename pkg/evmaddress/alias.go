package evmaddress

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/crypto"
)

// DER prefix the Hedera SDKs emit for secp256k1 private keys.
const ecdsaDERPrefix = "3030020100300706052b8104000a04220420"

// AliasFromECDSAKey derives the EVM alias of a secp256k1 key: the last 20 bytes
// of keccak256 over the uncompressed public key without its 0x04 tag.
// raw may be 32 raw bytes or the DER form, hex encoded, with or without 0x.
func AliasFromECDSAKey(raw string) (HexAddress, error) {
	candidate := strings.ToLower(strings.TrimSpace(raw))
	candidate = strings.TrimPrefix(candidate, "0x")
	candidate = strings.TrimPrefix(candidate, ecdsaDERPrefix)

	keyBytes, err := hex.DecodeString(candidate)
	if err != nil {
		return "", fmt.Errorf("invalid ECDSA private key hex: %w", err)
	}
	if len(keyBytes) != 32 {
		return "", fmt.Errorf("ECDSA private key must be 32 bytes, got %d", len(keyBytes))
	}

	_, publicKey := btcec.PrivKeyFromBytes(keyBytes)
	uncompressed := publicKey.SerializeUncompressed()
	digest := crypto.Keccak256(uncompressed[1:])

	return render(digest[12:]), nil
}
