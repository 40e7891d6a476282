//go:build !strided_debug

package kernel

const checkContracts = false
