package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/codefm/teachernotebook/core/school"
)

func (cli *commandLine) schoolsCmd(args []string) error {
	if len(args) == 0 {
		return cli.listSchools()
	}

	switch args[0] {
	case "list":
		return cli.listSchools()

	case "add":
		cmd := flag.NewFlagSet("schools add", flag.ContinueOnError)
		cmd.SetOutput(cli.out)
		name := cmd.String("name", "", "school name")
		town := cmd.String("town", "", "town")
		tlf := cmd.String("tlf", "", "9-digit phone")
		if err := cmd.Parse(args[1:]); err != nil {
			return errHelp
		}
		ns := school.NewSchool{Name: *name, Town: *town, Tlf: *tlf}
		if _, err := cli.schools.CreateSchool(context.Background(), ns); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, cli.t("dashboard.schools.createSuccess"))
		return nil

	case "update":
		cmd := flag.NewFlagSet("schools update", flag.ContinueOnError)
		cmd.SetOutput(cli.out)
		id := cmd.Int("id", 0, "school id")
		name := cmd.String("name", "", "school name")
		town := cmd.String("town", "", "town")
		tlf := cmd.String("tlf", "", "9-digit phone")
		if err := cmd.Parse(args[1:]); err != nil {
			return errHelp
		}
		ns := school.NewSchool{Name: *name, Town: *town, Tlf: *tlf}
		if _, err := cli.schools.UpdateSchool(context.Background(), *id, ns); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, cli.t("dashboard.schools.updateSuccess"))
		return nil

	case "delete":
		cmd := flag.NewFlagSet("schools delete", flag.ContinueOnError)
		cmd.SetOutput(cli.out)
		id := cmd.Int("id", 0, "school id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errHelp
		}
		if err := cli.schools.DeleteSchool(context.Background(), *id); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, cli.t("dashboard.schools.deleteSuccess"))
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listSchools() error {
	fmt.Fprintln(cli.out, cli.t("dashboard.loadingData"))
	schools, err := cli.schools.Schools(context.Background())
	if err != nil {
		return err
	}
	if len(schools) == 0 {
		fmt.Fprintln(cli.out, cli.t("dashboard.schools.noSchools"))
		return nil
	}

	fmt.Fprintln(cli.out, cli.t("dashboard.schools.list"))
	for _, s := range schools {
		line := fmt.Sprintf("[%d] %s", s.ID, s.Name)
		if s.Town != "" {
			line += ", " + s.Town
		}
		if s.Tlf != 0 {
			line += fmt.Sprintf(" (%d)", s.Tlf)
		}
		fmt.Fprintln(cli.out, line)
		if len(s.Classes) == 0 {
			fmt.Fprintf(cli.out, "  %s\n", cli.t("dashboard.classes.noClasses"))
			continue
		}
		for _, c := range s.Classes {
			fmt.Fprintf(cli.out, "  - [%d] %s (%s)\n", c.ID, c.Name, c.SchoolYear)
		}
	}
	return nil
}
