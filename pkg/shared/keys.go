package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// ParsePrivateKey tries ED25519, then ECDSA, then the SDK's generic DER parser.
func ParsePrivateKey(raw string) (hedera.PrivateKey, error) {
	candidate := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}

	ed25519Key, edErr := hedera.PrivateKeyFromStringEd25519(candidate)
	if edErr == nil {
		return ed25519Key, nil
	}

	ecdsaKey, ecdsaErr := hedera.PrivateKeyFromStringECDSA(candidate)
	if ecdsaErr == nil {
		return ecdsaKey, nil
	}

	genericKey, genericErr := hedera.PrivateKeyFromString(candidate)
	if genericErr == nil {
		return genericKey, nil
	}

	return hedera.PrivateKey{}, fmt.Errorf(
		"failed to parse private key as ED25519 (%v), ECDSA (%v), or generic (%v)",
		edErr,
		ecdsaErr,
		genericErr,
	)
}

// ParseECDSAPrivateKey parses keys the staking scripts expect to be secp256k1.
func ParseECDSAPrivateKey(raw string) (hedera.PrivateKey, error) {
	candidate := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}
	key, err := hedera.PrivateKeyFromStringECDSA(candidate)
	if err != nil {
		return ParsePrivateKey(candidate)
	}
	return key, nil
}
