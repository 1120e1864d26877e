package main

import (
	"fmt"

	"github.com/codefm/teachernotebook/core/locale"
)

func (cli *commandLine) langCmd(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cli.out, cli.locales.Get())
		return nil
	}

	loc := locale.Locale(args[0])
	if err := cli.locales.Set(loc); err != nil {
		return err
	}
	switch loc {
	case locale.EN:
		fmt.Fprintln(cli.out, cli.t("common.tooltip.switchToSpanish"))
	default:
		fmt.Fprintln(cli.out, cli.t("common.tooltip.switchToEnglish"))
	}
	return nil
}
