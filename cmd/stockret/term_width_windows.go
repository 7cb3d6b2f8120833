//go:build windows

package main

import "os"

func terminalWidth(_ *os.File) int { return columnsEnv() }
