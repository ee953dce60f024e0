/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/surveta/surveta/pkg/surveydef"
)

func newDescribeCmd() *cobra.Command {
	lang := ""
	cmd := &cobra.Command{
		Use:   "describe scheme-file",
		Short: "Prints the questionnaire of a survey scheme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return describe(args[0], lang)
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "Translate titles and labels to language (BCP 47 tag)")
	return cmd
}

func describe(path, lang string) error {
	scheme, def, err := loadSchemeFile(path)
	if err != nil {
		return err
	}

	localize := func(s string) string { return s }
	if lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("language «%s»: %w", lang, err)
		}
		l, err := def.BuildLocalizer()
		if err != nil {
			return err
		}
		localize = func(s string) string { return l.Localize(tag, s) }
	}

	fmt.Print(describeScheme(scheme, localize))
	return nil
}

// describeScheme renders the scheme header and a block per field
func describeScheme(scheme *surveydef.Scheme, localize func(string) string) string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%v\n", scheme)
	if title := scheme.Title(); title != "" {
		fmt.Fprintln(&sb, localize(title))
	}
	scheme.Fields(func(fld surveydef.IField) {
		fmt.Fprintf(&sb, "\n%s. %s\n", fld.Name(), localize(fld.Title()))
		fmt.Fprintf(&sb, "  kind: %s", fld.Kind().TrimString())
		switch f := fld.(type) {
		case *surveydef.IntegerField:
			if min, ok := f.Min(); ok {
				fmt.Fprintf(&sb, ", min: %d", min)
			}
			if max, ok := f.Max(); ok {
				fmt.Fprintf(&sb, ", max: %d", max)
			}
		case *surveydef.FloatField:
			if min, ok := f.Min(); ok {
				fmt.Fprintf(&sb, ", min: %v", min)
			}
			if max, ok := f.Max(); ok {
				fmt.Fprintf(&sb, ", max: %v", max)
			}
		}
		fmt.Fprintln(&sb)
		if f, ok := fld.(surveydef.ICategoricalField); ok {
			fmt.Fprintln(&sb, "  categories:")
			for _, cat := range f.Categories().PrintCategories() {
				fmt.Fprintf(&sb, "    %v: %s\n", cat.Code, localize(cat.Label))
			}
		}
	})
	return sb.String()
}
