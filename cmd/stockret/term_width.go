package main

import (
	"os"
	"strconv"
)

// columnsEnv reads the width exported by most shells in $COLUMNS.
func columnsEnv() int {
	if cols, ok := os.LookupEnv("COLUMNS"); ok {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
