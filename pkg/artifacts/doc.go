// Package artifacts loads compiled contract bytecode and ABIs from disk.
//
// Bytecode is stored as hex text, either plain (.bin) or brotli compressed
// (.bin.br). Hardhat style JSON artifacts carrying both abi and bytecode are
// also accepted.
package artifacts
