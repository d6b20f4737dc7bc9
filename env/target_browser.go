//go:build js && wasm

package env

const defaultTarget = TargetBrowser
