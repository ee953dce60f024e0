/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/surveta/surveta/pkg/answers"
	"github.com/surveta/surveta/pkg/coreutils"
	"github.com/surveta/surveta/pkg/surveys"
)

func newValidateCmd() *cobra.Command {
	schemesDir := ""
	cacheSize := 0
	cmd := &cobra.Command{
		Use:   "validate answers-file...",
		Short: "Checks answers files against their survey schemes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := surveys.NewCachingProvider(dirLoader(schemesDir), cacheSize)
			return validate(provider, args)
		},
	}
	cmd.Flags().StringVar(&schemesDir, "schemes", ".", "Directory with scheme definition files")
	cmd.Flags().IntVar(&cacheSize, "scheme-cache", 16, "Count of schemes kept in memory")
	return cmd
}

func validate(provider surveys.ISurveysProvider, paths []string) error {
	wrong := 0
	for _, path := range paths {
		if err := validateFile(provider, path); err != nil {
			fmt.Printf("%s: %s\n", path, red(err))
			wrong++
			continue
		}
		fmt.Printf("%s: %s\n", path, green("OK"))
	}
	if wrong > 0 {
		return fmt.Errorf("%d of %d answers files are not valid", wrong, len(paths))
	}
	return nil
}

// validateFile checks one answers file: the survey must be known and
// every answer must pass its field checks
func validateFile(provider surveys.ISurveysProvider, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	payload := coreutils.MapObject{}
	if err := coreutils.JSONUnmarshal(b, &payload); err != nil {
		return err
	}

	name, err := payload.AsStringRequired("survey")
	if err != nil {
		return err
	}
	scheme, err := provider.Survey(name)
	if err != nil {
		return err
	}

	values, ok, err := payload.AsObject("answers")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("field 'answers' missing: %w", coreutils.ErrFieldsMissed)
	}

	rec, err := answers.BuildRecord(scheme, values)
	if err != nil {
		return err
	}

	count := 0
	rec.FieldNames(func(string) { count++ })
	logger.Verbose(fmt.Sprintf("%s: survey «%s», %d answers", path, scheme.Name(), count))
	return nil
}
