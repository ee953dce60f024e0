/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

var red = color.New(color.FgRed).SprintFunc()
var green = color.New(color.FgGreen).SprintFunc()

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(red(err))
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"surveta",
		"Survey schemes utility",
		args,
		ver,
		newListCmd(),
		newDescribeCmd(),
		newValidateCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
