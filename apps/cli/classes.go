package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/codefm/teachernotebook/core/school"
)

func (cli *commandLine) classesCmd(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "add":
		cmd := flag.NewFlagSet("classes add", flag.ContinueOnError)
		cmd.SetOutput(cli.out)
		schoolID := cmd.Int("school", 0, "school id")
		name := cmd.String("name", "", "class name")
		year := cmd.String("year", "", "school year, YY/YY")
		if err := cmd.Parse(args[1:]); err != nil {
			return errHelp
		}
		nc := school.NewClass{Name: *name, SchoolYear: *year}
		if _, err := cli.schools.CreateClass(context.Background(), *schoolID, nc); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, cli.t("dashboard.classes.createSuccess"))
		return nil

	case "update":
		cmd := flag.NewFlagSet("classes update", flag.ContinueOnError)
		cmd.SetOutput(cli.out)
		id := cmd.Int("id", 0, "class id")
		name := cmd.String("name", "", "class name")
		year := cmd.String("year", "", "school year, YY/YY")
		if err := cmd.Parse(args[1:]); err != nil {
			return errHelp
		}
		nc := school.NewClass{Name: *name, SchoolYear: *year}
		if _, err := cli.schools.UpdateClass(context.Background(), *id, nc); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, cli.t("dashboard.classes.updateSuccess"))
		return nil

	case "delete":
		cmd := flag.NewFlagSet("classes delete", flag.ContinueOnError)
		cmd.SetOutput(cli.out)
		id := cmd.Int("id", 0, "class id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errHelp
		}
		if err := cli.schools.DeleteClass(context.Background(), *id); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, cli.t("dashboard.classes.deleteSuccess"))
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}
