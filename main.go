/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command nol builds design token files into CSS custom properties and
// theme-extension modules.
package main

import (
	"os"

	"bennypowers.dev/nol/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
