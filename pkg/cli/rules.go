package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/valid/pkg/rules"
)

type ruleInfo struct {
	Type  string
	Value string
	Keys  []string
}

var ruleTypes = []ruleInfo{
	{rules.TypeMandatory, "bool", []string{rules.KeyMandatoryField}},
	{rules.TypeMinLength, "int", []string{rules.KeyMinLengthNotReached}},
	{rules.TypeMaxLength, "int", []string{rules.KeyMaxLengthExceeded}},
	{rules.TypeRegex, "string", []string{rules.KeyRegexNotSatisfied}},
	{rules.TypeMin, "number", []string{rules.KeyValueTooSmall}},
	{rules.TypeMax, "number", []string{rules.KeyValueTooLarge}},
	{rules.TypeTag, "string", []string{rules.KeyTagNotSatisfied}},
}

func rulesCmd() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List the rule types a form can use",
		Description: `Print every rule type accepted in a form, the kind of bound it takes
and the message keys the catalog must provide for it.`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tVALUE\tMESSAGE KEYS")
			for _, r := range ruleTypes {
				fmt.Fprintf(tw, "%s\t%s\t%v\n", r.Type, r.Value, r.Keys)
			}
			return tw.Flush()
		},
	}
}
