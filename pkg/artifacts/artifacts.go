package artifacts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const brotliExtension = ".br"

// Artifact is a contract's ABI together with its creation bytecode.
type Artifact struct {
	Name     string
	ABI      abi.ABI
	Bytecode string
}

type hardhatArtifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// LoadBytecode returns the bytecode stored at path as hex digits without a
// 0x prefix. Files ending in .br are brotli decompressed first.
func LoadBytecode(path string) (string, error) {
	raw, err := readFile(path)
	if err != nil {
		return "", err
	}
	bytecode, err := NormalizeBytecode(string(raw))
	if err != nil {
		return "", fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}
	return bytecode, nil
}

// NormalizeBytecode trims whitespace and the 0x prefix and checks the rest
// is an even number of hex digits.
func NormalizeBytecode(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		trimmed = trimmed[2:]
	}
	if trimmed == "" {
		return "", fmt.Errorf("bytecode is empty")
	}
	if _, err := hexutil.Decode("0x" + trimmed); err != nil {
		return "", err
	}
	return strings.ToLower(trimmed), nil
}

// LoadABI parses a solc ABI JSON file.
func LoadABI(path string) (abi.ABI, error) {
	raw, err := readFile(path)
	if err != nil {
		return abi.ABI{}, err
	}
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI %s: %w", path, err)
	}
	return parsed, nil
}

// LoadArtifact reads a Hardhat style JSON artifact.
func LoadArtifact(path string) (Artifact, error) {
	raw, err := readFile(path)
	if err != nil {
		return Artifact{}, err
	}

	var decoded hardhatArtifact
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Artifact{}, fmt.Errorf("failed to decode artifact %s: %w", path, err)
	}
	if len(decoded.ABI) == 0 {
		return Artifact{}, fmt.Errorf("artifact %s has no abi", path)
	}
	parsed, err := abi.JSON(bytes.NewReader(decoded.ABI))
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to parse ABI in %s: %w", path, err)
	}
	bytecode, err := NormalizeBytecode(decoded.Bytecode)
	if err != nil {
		return Artifact{}, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}

	name := strings.TrimSpace(decoded.ContractName)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return Artifact{Name: name, ABI: parsed, Bytecode: bytecode}, nil
}

// CheckConstructor verifies the constructor takes exactly count inputs.
func CheckConstructor(contract abi.ABI, count int) error {
	if got := len(contract.Constructor.Inputs); got != count {
		return fmt.Errorf("constructor takes %d arguments, got %d", got, count)
	}
	return nil
}

// CheckMethod verifies the ABI declares name with exactly count inputs.
func CheckMethod(contract abi.ABI, name string, count int) error {
	method, ok := contract.Methods[name]
	if !ok {
		return fmt.Errorf("ABI has no method %q", name)
	}
	if got := len(method.Inputs); got != count {
		return fmt.Errorf("method %s takes %d arguments, got %d", name, got, count)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, brotliExtension) {
		reader = brotli.NewReader(file)
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return raw, nil
}
