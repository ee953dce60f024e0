/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/surveta/surveta/pkg/surveydef"
	"github.com/surveta/surveta/pkg/surveys"
)

func newListCmd() *cobra.Command {
	schemesDir := ""
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists the surveys found in the schemes directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(schemesDir)
		},
	}
	cmd.Flags().StringVar(&schemesDir, "schemes", ".", "Directory with scheme definition files")
	return cmd
}

func list(dir string) error {
	registry := surveys.New()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !slices.Contains(schemeExts, strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		scheme, _, err := loadSchemeFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		if err := registry.Add(scheme); err != nil {
			return err
		}
	}

	if registry.SurveyCount() == 0 {
		fmt.Printf("no schemes found in «%s»\n", dir)
		return nil
	}
	registry.Surveys(func(scheme *surveydef.Scheme) {
		fmt.Printf("%s: %s (%d fields)\n", scheme.Name(), scheme.Title(), scheme.FieldCount())
	})
	return nil
}
